// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnonymousUsersColumns holds the columns for the "anonymous_users" table.
	AnonymousUsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "fingerprint", Type: field.TypeString, Unique: true},
		{Name: "ip", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "user_agent", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "transcription_count", Type: field.TypeInt, Default: 0},
		{Name: "is_transfer_used", Type: field.TypeBool, Default: false},
		{Name: "transferred_to_user_id", Type: field.TypeInt, Nullable: true},
		{Name: "transferred_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AnonymousUsersTable holds the schema information for the "anonymous_users" table.
	AnonymousUsersTable = &schema.Table{
		Name:       "anonymous_users",
		Columns:    AnonymousUsersColumns,
		PrimaryKey: []*schema.Column{AnonymousUsersColumns[0]},
	}
	// PaymentsColumns holds the columns for the "payments" table.
	PaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stripe_session_id", Type: field.TypeString, Unique: true},
		{Name: "amount_cents", Type: field.TypeInt64, Default: 0},
		{Name: "currency", Type: field.TypeString, Default: "usd"},
		{Name: "tokens_added", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "completed"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_payments", Type: field.TypeInt},
	}
	// PaymentsTable holds the schema information for the "payments" table.
	PaymentsTable = &schema.Table{
		Name:       "payments",
		Columns:    PaymentsColumns,
		PrimaryKey: []*schema.Column{PaymentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payments_users_payments",
				Columns:    []*schema.Column{PaymentsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SpendingEntriesColumns holds the columns for the "spending_entries" table.
	SpendingEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action", Type: field.TypeString},
		{Name: "tokens_changed", Type: field.TypeInt},
		{Name: "balance_after", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_spending_entries", Type: field.TypeInt},
	}
	// SpendingEntriesTable holds the schema information for the "spending_entries" table.
	SpendingEntriesTable = &schema.Table{
		Name:       "spending_entries",
		Columns:    SpendingEntriesColumns,
		PrimaryKey: []*schema.Column{SpendingEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "spending_entries_users_spending_entries",
				Columns:    []*schema.Column{SpendingEntriesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// TranscriptionsColumns holds the columns for the "transcriptions" table.
	TranscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_url", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "duration_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "language", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "queued"},
		{Name: "transcript", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "error", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "share_token", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "fingerprint", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_transcriptions", Type: field.TypeInt, Nullable: true},
	}
	// TranscriptionsTable holds the schema information for the "transcriptions" table.
	TranscriptionsTable = &schema.Table{
		Name:       "transcriptions",
		Columns:    TranscriptionsColumns,
		PrimaryKey: []*schema.Column{TranscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcriptions_users_transcriptions",
				Columns:    []*schema.Column{TranscriptionsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "tokens", Type: field.TypeInt, Default: 0},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "stripe_customer_id", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnonymousUsersTable,
		PaymentsTable,
		SpendingEntriesTable,
		TranscriptionsTable,
		UsersTable,
	}
)

func init() {
	PaymentsTable.ForeignKeys[0].RefTable = UsersTable
	SpendingEntriesTable.ForeignKeys[0].RefTable = UsersTable
	TranscriptionsTable.ForeignKeys[0].RefTable = UsersTable
}
