// Code generated by ent, DO NOT EDIT.

package spendingentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nolan/scribecloud/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLTE(FieldID, id))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldAction, v))
}

// TokensChanged applies equality check predicate on the "tokens_changed" field. It's identical to TokensChangedEQ.
func TokensChanged(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldTokensChanged, v))
}

// BalanceAfter applies equality check predicate on the "balance_after" field. It's identical to BalanceAfterEQ.
func BalanceAfter(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldBalanceAfter, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldContainsFold(FieldAction, v))
}

// TokensChangedEQ applies the EQ predicate on the "tokens_changed" field.
func TokensChangedEQ(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldTokensChanged, v))
}

// TokensChangedNEQ applies the NEQ predicate on the "tokens_changed" field.
func TokensChangedNEQ(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNEQ(FieldTokensChanged, v))
}

// TokensChangedIn applies the In predicate on the "tokens_changed" field.
func TokensChangedIn(vs ...int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldIn(FieldTokensChanged, vs...))
}

// TokensChangedNotIn applies the NotIn predicate on the "tokens_changed" field.
func TokensChangedNotIn(vs ...int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNotIn(FieldTokensChanged, vs...))
}

// TokensChangedGT applies the GT predicate on the "tokens_changed" field.
func TokensChangedGT(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGT(FieldTokensChanged, v))
}

// TokensChangedGTE applies the GTE predicate on the "tokens_changed" field.
func TokensChangedGTE(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGTE(FieldTokensChanged, v))
}

// TokensChangedLT applies the LT predicate on the "tokens_changed" field.
func TokensChangedLT(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLT(FieldTokensChanged, v))
}

// TokensChangedLTE applies the LTE predicate on the "tokens_changed" field.
func TokensChangedLTE(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLTE(FieldTokensChanged, v))
}

// BalanceAfterEQ applies the EQ predicate on the "balance_after" field.
func BalanceAfterEQ(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldBalanceAfter, v))
}

// BalanceAfterNEQ applies the NEQ predicate on the "balance_after" field.
func BalanceAfterNEQ(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNEQ(FieldBalanceAfter, v))
}

// BalanceAfterIn applies the In predicate on the "balance_after" field.
func BalanceAfterIn(vs ...int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldIn(FieldBalanceAfter, vs...))
}

// BalanceAfterNotIn applies the NotIn predicate on the "balance_after" field.
func BalanceAfterNotIn(vs ...int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNotIn(FieldBalanceAfter, vs...))
}

// BalanceAfterGT applies the GT predicate on the "balance_after" field.
func BalanceAfterGT(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGT(FieldBalanceAfter, v))
}

// BalanceAfterGTE applies the GTE predicate on the "balance_after" field.
func BalanceAfterGTE(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGTE(FieldBalanceAfter, v))
}

// BalanceAfterLT applies the LT predicate on the "balance_after" field.
func BalanceAfterLT(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLT(FieldBalanceAfter, v))
}

// BalanceAfterLTE applies the LTE predicate on the "balance_after" field.
func BalanceAfterLTE(v int) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLTE(FieldBalanceAfter, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldContainsFold(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.SpendingEntry {
	return predicate.SpendingEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.SpendingEntry {
	return predicate.SpendingEntry(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SpendingEntry) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SpendingEntry) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SpendingEntry) predicate.SpendingEntry {
	return predicate.SpendingEntry(sql.NotPredicates(p))
}
