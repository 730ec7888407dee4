// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/nolan/scribecloud/internal/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nolan/scribecloud/internal/ent/anonymoususer"
	"github.com/nolan/scribecloud/internal/ent/payment"
	"github.com/nolan/scribecloud/internal/ent/spendingentry"
	"github.com/nolan/scribecloud/internal/ent/transcription"
	"github.com/nolan/scribecloud/internal/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnonymousUser is the client for interacting with the AnonymousUser builders.
	AnonymousUser *AnonymousUserClient
	// Payment is the client for interacting with the Payment builders.
	Payment *PaymentClient
	// SpendingEntry is the client for interacting with the SpendingEntry builders.
	SpendingEntry *SpendingEntryClient
	// Transcription is the client for interacting with the Transcription builders.
	Transcription *TranscriptionClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnonymousUser = NewAnonymousUserClient(c.config)
	c.Payment = NewPaymentClient(c.config)
	c.SpendingEntry = NewSpendingEntryClient(c.config)
	c.Transcription = NewTranscriptionClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		AnonymousUser: NewAnonymousUserClient(cfg),
		Payment:       NewPaymentClient(cfg),
		SpendingEntry: NewSpendingEntryClient(cfg),
		Transcription: NewTranscriptionClient(cfg),
		User:          NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		AnonymousUser: NewAnonymousUserClient(cfg),
		Payment:       NewPaymentClient(cfg),
		SpendingEntry: NewSpendingEntryClient(cfg),
		Transcription: NewTranscriptionClient(cfg),
		User:          NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnonymousUser.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AnonymousUser.Use(hooks...)
	c.Payment.Use(hooks...)
	c.SpendingEntry.Use(hooks...)
	c.Transcription.Use(hooks...)
	c.User.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnonymousUser.Intercept(interceptors...)
	c.Payment.Intercept(interceptors...)
	c.SpendingEntry.Intercept(interceptors...)
	c.Transcription.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnonymousUserMutation:
		return c.AnonymousUser.mutate(ctx, m)
	case *PaymentMutation:
		return c.Payment.mutate(ctx, m)
	case *SpendingEntryMutation:
		return c.SpendingEntry.mutate(ctx, m)
	case *TranscriptionMutation:
		return c.Transcription.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnonymousUserClient is a client for the AnonymousUser schema.
type AnonymousUserClient struct {
	config
}

// NewAnonymousUserClient returns a client for the AnonymousUser from the given config.
func NewAnonymousUserClient(c config) *AnonymousUserClient {
	return &AnonymousUserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `anonymoususer.Hooks(f(g(h())))`.
func (c *AnonymousUserClient) Use(hooks ...Hook) {
	c.hooks.AnonymousUser = append(c.hooks.AnonymousUser, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `anonymoususer.Intercept(f(g(h())))`.
func (c *AnonymousUserClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnonymousUser = append(c.inters.AnonymousUser, interceptors...)
}

// Create returns a builder for creating a AnonymousUser entity.
func (c *AnonymousUserClient) Create() *AnonymousUserCreate {
	mutation := newAnonymousUserMutation(c.config, OpCreate)
	return &AnonymousUserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnonymousUser entities.
func (c *AnonymousUserClient) CreateBulk(builders ...*AnonymousUserCreate) *AnonymousUserCreateBulk {
	return &AnonymousUserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnonymousUserClient) MapCreateBulk(slice any, setFunc func(*AnonymousUserCreate, int)) *AnonymousUserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnonymousUserCreateBulk{err: fmt.Errorf("calling to AnonymousUserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnonymousUserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnonymousUserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnonymousUser.
func (c *AnonymousUserClient) Update() *AnonymousUserUpdate {
	mutation := newAnonymousUserMutation(c.config, OpUpdate)
	return &AnonymousUserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnonymousUserClient) UpdateOne(_m *AnonymousUser) *AnonymousUserUpdateOne {
	mutation := newAnonymousUserMutation(c.config, OpUpdateOne, withAnonymousUser(_m))
	return &AnonymousUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnonymousUserClient) UpdateOneID(id int) *AnonymousUserUpdateOne {
	mutation := newAnonymousUserMutation(c.config, OpUpdateOne, withAnonymousUserID(id))
	return &AnonymousUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnonymousUser.
func (c *AnonymousUserClient) Delete() *AnonymousUserDelete {
	mutation := newAnonymousUserMutation(c.config, OpDelete)
	return &AnonymousUserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnonymousUserClient) DeleteOne(_m *AnonymousUser) *AnonymousUserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnonymousUserClient) DeleteOneID(id int) *AnonymousUserDeleteOne {
	builder := c.Delete().Where(anonymoususer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnonymousUserDeleteOne{builder}
}

// Query returns a query builder for AnonymousUser.
func (c *AnonymousUserClient) Query() *AnonymousUserQuery {
	return &AnonymousUserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnonymousUser},
		inters: c.Interceptors(),
	}
}

// Get returns a AnonymousUser entity by its id.
func (c *AnonymousUserClient) Get(ctx context.Context, id int) (*AnonymousUser, error) {
	return c.Query().Where(anonymoususer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnonymousUserClient) GetX(ctx context.Context, id int) *AnonymousUser {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnonymousUserClient) Hooks() []Hook {
	return c.hooks.AnonymousUser
}

// Interceptors returns the client interceptors.
func (c *AnonymousUserClient) Interceptors() []Interceptor {
	return c.inters.AnonymousUser
}

func (c *AnonymousUserClient) mutate(ctx context.Context, m *AnonymousUserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnonymousUserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnonymousUserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnonymousUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnonymousUserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnonymousUser mutation op: %q", m.Op())
	}
}

// PaymentClient is a client for the Payment schema.
type PaymentClient struct {
	config
}

// NewPaymentClient returns a client for the Payment from the given config.
func NewPaymentClient(c config) *PaymentClient {
	return &PaymentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payment.Hooks(f(g(h())))`.
func (c *PaymentClient) Use(hooks ...Hook) {
	c.hooks.Payment = append(c.hooks.Payment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payment.Intercept(f(g(h())))`.
func (c *PaymentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Payment = append(c.inters.Payment, interceptors...)
}

// Create returns a builder for creating a Payment entity.
func (c *PaymentClient) Create() *PaymentCreate {
	mutation := newPaymentMutation(c.config, OpCreate)
	return &PaymentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Payment entities.
func (c *PaymentClient) CreateBulk(builders ...*PaymentCreate) *PaymentCreateBulk {
	return &PaymentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaymentClient) MapCreateBulk(slice any, setFunc func(*PaymentCreate, int)) *PaymentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaymentCreateBulk{err: fmt.Errorf("calling to PaymentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaymentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaymentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Payment.
func (c *PaymentClient) Update() *PaymentUpdate {
	mutation := newPaymentMutation(c.config, OpUpdate)
	return &PaymentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaymentClient) UpdateOne(_m *Payment) *PaymentUpdateOne {
	mutation := newPaymentMutation(c.config, OpUpdateOne, withPayment(_m))
	return &PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaymentClient) UpdateOneID(id int) *PaymentUpdateOne {
	mutation := newPaymentMutation(c.config, OpUpdateOne, withPaymentID(id))
	return &PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Payment.
func (c *PaymentClient) Delete() *PaymentDelete {
	mutation := newPaymentMutation(c.config, OpDelete)
	return &PaymentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaymentClient) DeleteOne(_m *Payment) *PaymentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaymentClient) DeleteOneID(id int) *PaymentDeleteOne {
	builder := c.Delete().Where(payment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaymentDeleteOne{builder}
}

// Query returns a query builder for Payment.
func (c *PaymentClient) Query() *PaymentQuery {
	return &PaymentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayment},
		inters: c.Interceptors(),
	}
}

// Get returns a Payment entity by its id.
func (c *PaymentClient) Get(ctx context.Context, id int) (*Payment, error) {
	return c.Query().Where(payment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaymentClient) GetX(ctx context.Context, id int) *Payment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Payment.
func (c *PaymentClient) QueryOwner(_m *Payment) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(payment.Table, payment.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, payment.OwnerTable, payment.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaymentClient) Hooks() []Hook {
	return c.hooks.Payment
}

// Interceptors returns the client interceptors.
func (c *PaymentClient) Interceptors() []Interceptor {
	return c.inters.Payment
}

func (c *PaymentClient) mutate(ctx context.Context, m *PaymentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaymentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaymentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaymentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Payment mutation op: %q", m.Op())
	}
}

// SpendingEntryClient is a client for the SpendingEntry schema.
type SpendingEntryClient struct {
	config
}

// NewSpendingEntryClient returns a client for the SpendingEntry from the given config.
func NewSpendingEntryClient(c config) *SpendingEntryClient {
	return &SpendingEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `spendingentry.Hooks(f(g(h())))`.
func (c *SpendingEntryClient) Use(hooks ...Hook) {
	c.hooks.SpendingEntry = append(c.hooks.SpendingEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `spendingentry.Intercept(f(g(h())))`.
func (c *SpendingEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SpendingEntry = append(c.inters.SpendingEntry, interceptors...)
}

// Create returns a builder for creating a SpendingEntry entity.
func (c *SpendingEntryClient) Create() *SpendingEntryCreate {
	mutation := newSpendingEntryMutation(c.config, OpCreate)
	return &SpendingEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SpendingEntry entities.
func (c *SpendingEntryClient) CreateBulk(builders ...*SpendingEntryCreate) *SpendingEntryCreateBulk {
	return &SpendingEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpendingEntryClient) MapCreateBulk(slice any, setFunc func(*SpendingEntryCreate, int)) *SpendingEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpendingEntryCreateBulk{err: fmt.Errorf("calling to SpendingEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpendingEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpendingEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SpendingEntry.
func (c *SpendingEntryClient) Update() *SpendingEntryUpdate {
	mutation := newSpendingEntryMutation(c.config, OpUpdate)
	return &SpendingEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpendingEntryClient) UpdateOne(_m *SpendingEntry) *SpendingEntryUpdateOne {
	mutation := newSpendingEntryMutation(c.config, OpUpdateOne, withSpendingEntry(_m))
	return &SpendingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpendingEntryClient) UpdateOneID(id int) *SpendingEntryUpdateOne {
	mutation := newSpendingEntryMutation(c.config, OpUpdateOne, withSpendingEntryID(id))
	return &SpendingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SpendingEntry.
func (c *SpendingEntryClient) Delete() *SpendingEntryDelete {
	mutation := newSpendingEntryMutation(c.config, OpDelete)
	return &SpendingEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpendingEntryClient) DeleteOne(_m *SpendingEntry) *SpendingEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpendingEntryClient) DeleteOneID(id int) *SpendingEntryDeleteOne {
	builder := c.Delete().Where(spendingentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpendingEntryDeleteOne{builder}
}

// Query returns a query builder for SpendingEntry.
func (c *SpendingEntryClient) Query() *SpendingEntryQuery {
	return &SpendingEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpendingEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a SpendingEntry entity by its id.
func (c *SpendingEntryClient) Get(ctx context.Context, id int) (*SpendingEntry, error) {
	return c.Query().Where(spendingentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpendingEntryClient) GetX(ctx context.Context, id int) *SpendingEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a SpendingEntry.
func (c *SpendingEntryClient) QueryOwner(_m *SpendingEntry) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(spendingentry.Table, spendingentry.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, spendingentry.OwnerTable, spendingentry.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SpendingEntryClient) Hooks() []Hook {
	return c.hooks.SpendingEntry
}

// Interceptors returns the client interceptors.
func (c *SpendingEntryClient) Interceptors() []Interceptor {
	return c.inters.SpendingEntry
}

func (c *SpendingEntryClient) mutate(ctx context.Context, m *SpendingEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpendingEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpendingEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpendingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpendingEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SpendingEntry mutation op: %q", m.Op())
	}
}

// TranscriptionClient is a client for the Transcription schema.
type TranscriptionClient struct {
	config
}

// NewTranscriptionClient returns a client for the Transcription from the given config.
func NewTranscriptionClient(c config) *TranscriptionClient {
	return &TranscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcription.Hooks(f(g(h())))`.
func (c *TranscriptionClient) Use(hooks ...Hook) {
	c.hooks.Transcription = append(c.hooks.Transcription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcription.Intercept(f(g(h())))`.
func (c *TranscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transcription = append(c.inters.Transcription, interceptors...)
}

// Create returns a builder for creating a Transcription entity.
func (c *TranscriptionClient) Create() *TranscriptionCreate {
	mutation := newTranscriptionMutation(c.config, OpCreate)
	return &TranscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transcription entities.
func (c *TranscriptionClient) CreateBulk(builders ...*TranscriptionCreate) *TranscriptionCreateBulk {
	return &TranscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptionClient) MapCreateBulk(slice any, setFunc func(*TranscriptionCreate, int)) *TranscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptionCreateBulk{err: fmt.Errorf("calling to TranscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transcription.
func (c *TranscriptionClient) Update() *TranscriptionUpdate {
	mutation := newTranscriptionMutation(c.config, OpUpdate)
	return &TranscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptionClient) UpdateOne(_m *Transcription) *TranscriptionUpdateOne {
	mutation := newTranscriptionMutation(c.config, OpUpdateOne, withTranscription(_m))
	return &TranscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptionClient) UpdateOneID(id int) *TranscriptionUpdateOne {
	mutation := newTranscriptionMutation(c.config, OpUpdateOne, withTranscriptionID(id))
	return &TranscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transcription.
func (c *TranscriptionClient) Delete() *TranscriptionDelete {
	mutation := newTranscriptionMutation(c.config, OpDelete)
	return &TranscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptionClient) DeleteOne(_m *Transcription) *TranscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptionClient) DeleteOneID(id int) *TranscriptionDeleteOne {
	builder := c.Delete().Where(transcription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptionDeleteOne{builder}
}

// Query returns a query builder for Transcription.
func (c *TranscriptionClient) Query() *TranscriptionQuery {
	return &TranscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscription},
		inters: c.Interceptors(),
	}
}

// Get returns a Transcription entity by its id.
func (c *TranscriptionClient) Get(ctx context.Context, id int) (*Transcription, error) {
	return c.Query().Where(transcription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptionClient) GetX(ctx context.Context, id int) *Transcription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Transcription.
func (c *TranscriptionClient) QueryOwner(_m *Transcription) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcription.Table, transcription.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transcription.OwnerTable, transcription.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranscriptionClient) Hooks() []Hook {
	return c.hooks.Transcription
}

// Interceptors returns the client interceptors.
func (c *TranscriptionClient) Interceptors() []Interceptor {
	return c.inters.Transcription
}

func (c *TranscriptionClient) mutate(ctx context.Context, m *TranscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Transcription mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTranscriptions queries the transcriptions edge of a User.
func (c *UserClient) QueryTranscriptions(_m *User) *TranscriptionQuery {
	query := (&TranscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(transcription.Table, transcription.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.TranscriptionsTable, user.TranscriptionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySpendingEntries queries the spending_entries edge of a User.
func (c *UserClient) QuerySpendingEntries(_m *User) *SpendingEntryQuery {
	query := (&SpendingEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(spendingentry.Table, spendingentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.SpendingEntriesTable, user.SpendingEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPayments queries the payments edge of a User.
func (c *UserClient) QueryPayments(_m *User) *PaymentQuery {
	query := (&PaymentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(payment.Table, payment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PaymentsTable, user.PaymentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnonymousUser, Payment, SpendingEntry, Transcription, User []ent.Hook
	}
	inters struct {
		AnonymousUser, Payment, SpendingEntry, Transcription, User []ent.Interceptor
	}
)
