// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/stepwiselabs/stepwise/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/stepwiselabs/stepwise/ent/confusionevent"
	"github.com/stepwiselabs/stepwise/ent/llmrequestevent"
	"github.com/stepwiselabs/stepwise/ent/nudgeevent"
	"github.com/stepwiselabs/stepwise/ent/sessionevent"
	"github.com/stepwiselabs/stepwise/ent/studentdoc"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ConfusionEvent is the client for interacting with the ConfusionEvent builders.
	ConfusionEvent *ConfusionEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// NudgeEvent is the client for interacting with the NudgeEvent builders.
	NudgeEvent *NudgeEventClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// StudentDoc is the client for interacting with the StudentDoc builders.
	StudentDoc *StudentDocClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ConfusionEvent = NewConfusionEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.NudgeEvent = NewNudgeEventClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.StudentDoc = NewStudentDocClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		ConfusionEvent:  NewConfusionEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		NudgeEvent:      NewNudgeEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
		StudentDoc:      NewStudentDocClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		ConfusionEvent:  NewConfusionEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		NudgeEvent:      NewNudgeEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
		StudentDoc:      NewStudentDocClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ConfusionEvent.
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
	c.ConfusionEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.NudgeEvent.Use(hooks...)
	c.SessionEvent.Use(hooks...)
	c.StudentDoc.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ConfusionEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.NudgeEvent.Intercept(interceptors...)
	c.SessionEvent.Intercept(interceptors...)
	c.StudentDoc.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConfusionEventMutation:
		return c.ConfusionEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *NudgeEventMutation:
		return c.NudgeEvent.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *StudentDocMutation:
		return c.StudentDoc.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConfusionEventClient is a client for the ConfusionEvent schema.
type ConfusionEventClient struct {
	config
}

// NewConfusionEventClient returns a client for the ConfusionEvent from the given config.
func NewConfusionEventClient(c config) *ConfusionEventClient {
	return &ConfusionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `confusionevent.Hooks(f(g(h())))`.
func (c *ConfusionEventClient) Use(hooks ...Hook) {
	c.hooks.ConfusionEvent = append(c.hooks.ConfusionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `confusionevent.Intercept(f(g(h())))`.
func (c *ConfusionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConfusionEvent = append(c.inters.ConfusionEvent, interceptors...)
}

// Create returns a builder for creating a ConfusionEvent entity.
func (c *ConfusionEventClient) Create() *ConfusionEventCreate {
	mutation := newConfusionEventMutation(c.config, OpCreate)
	return &ConfusionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConfusionEvent entities.
func (c *ConfusionEventClient) CreateBulk(builders ...*ConfusionEventCreate) *ConfusionEventCreateBulk {
	return &ConfusionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConfusionEventClient) MapCreateBulk(slice any, setFunc func(*ConfusionEventCreate, int)) *ConfusionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConfusionEventCreateBulk{err: fmt.Errorf("calling to ConfusionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConfusionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConfusionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConfusionEvent.
func (c *ConfusionEventClient) Update() *ConfusionEventUpdate {
	mutation := newConfusionEventMutation(c.config, OpUpdate)
	return &ConfusionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConfusionEventClient) UpdateOne(_m *ConfusionEvent) *ConfusionEventUpdateOne {
	mutation := newConfusionEventMutation(c.config, OpUpdateOne, withConfusionEvent(_m))
	return &ConfusionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConfusionEventClient) UpdateOneID(id int) *ConfusionEventUpdateOne {
	mutation := newConfusionEventMutation(c.config, OpUpdateOne, withConfusionEventID(id))
	return &ConfusionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConfusionEvent.
func (c *ConfusionEventClient) Delete() *ConfusionEventDelete {
	mutation := newConfusionEventMutation(c.config, OpDelete)
	return &ConfusionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConfusionEventClient) DeleteOne(_m *ConfusionEvent) *ConfusionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConfusionEventClient) DeleteOneID(id int) *ConfusionEventDeleteOne {
	builder := c.Delete().Where(confusionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConfusionEventDeleteOne{builder}
}

// Query returns a query builder for ConfusionEvent.
func (c *ConfusionEventClient) Query() *ConfusionEventQuery {
	return &ConfusionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConfusionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ConfusionEvent entity by its id.
func (c *ConfusionEventClient) Get(ctx context.Context, id int) (*ConfusionEvent, error) {
	return c.Query().Where(confusionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConfusionEventClient) GetX(ctx context.Context, id int) *ConfusionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConfusionEventClient) Hooks() []Hook {
	return c.hooks.ConfusionEvent
}

// Interceptors returns the client interceptors.
func (c *ConfusionEventClient) Interceptors() []Interceptor {
	return c.inters.ConfusionEvent
}

func (c *ConfusionEventClient) mutate(ctx context.Context, m *ConfusionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConfusionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConfusionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConfusionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConfusionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConfusionEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// NudgeEventClient is a client for the NudgeEvent schema.
type NudgeEventClient struct {
	config
}

// NewNudgeEventClient returns a client for the NudgeEvent from the given config.
func NewNudgeEventClient(c config) *NudgeEventClient {
	return &NudgeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nudgeevent.Hooks(f(g(h())))`.
func (c *NudgeEventClient) Use(hooks ...Hook) {
	c.hooks.NudgeEvent = append(c.hooks.NudgeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nudgeevent.Intercept(f(g(h())))`.
func (c *NudgeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.NudgeEvent = append(c.inters.NudgeEvent, interceptors...)
}

// Create returns a builder for creating a NudgeEvent entity.
func (c *NudgeEventClient) Create() *NudgeEventCreate {
	mutation := newNudgeEventMutation(c.config, OpCreate)
	return &NudgeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NudgeEvent entities.
func (c *NudgeEventClient) CreateBulk(builders ...*NudgeEventCreate) *NudgeEventCreateBulk {
	return &NudgeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NudgeEventClient) MapCreateBulk(slice any, setFunc func(*NudgeEventCreate, int)) *NudgeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NudgeEventCreateBulk{err: fmt.Errorf("calling to NudgeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NudgeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NudgeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NudgeEvent.
func (c *NudgeEventClient) Update() *NudgeEventUpdate {
	mutation := newNudgeEventMutation(c.config, OpUpdate)
	return &NudgeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NudgeEventClient) UpdateOne(_m *NudgeEvent) *NudgeEventUpdateOne {
	mutation := newNudgeEventMutation(c.config, OpUpdateOne, withNudgeEvent(_m))
	return &NudgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NudgeEventClient) UpdateOneID(id int) *NudgeEventUpdateOne {
	mutation := newNudgeEventMutation(c.config, OpUpdateOne, withNudgeEventID(id))
	return &NudgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NudgeEvent.
func (c *NudgeEventClient) Delete() *NudgeEventDelete {
	mutation := newNudgeEventMutation(c.config, OpDelete)
	return &NudgeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NudgeEventClient) DeleteOne(_m *NudgeEvent) *NudgeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NudgeEventClient) DeleteOneID(id int) *NudgeEventDeleteOne {
	builder := c.Delete().Where(nudgeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NudgeEventDeleteOne{builder}
}

// Query returns a query builder for NudgeEvent.
func (c *NudgeEventClient) Query() *NudgeEventQuery {
	return &NudgeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNudgeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a NudgeEvent entity by its id.
func (c *NudgeEventClient) Get(ctx context.Context, id int) (*NudgeEvent, error) {
	return c.Query().Where(nudgeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NudgeEventClient) GetX(ctx context.Context, id int) *NudgeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NudgeEventClient) Hooks() []Hook {
	return c.hooks.NudgeEvent
}

// Interceptors returns the client interceptors.
func (c *NudgeEventClient) Interceptors() []Interceptor {
	return c.inters.NudgeEvent
}

func (c *NudgeEventClient) mutate(ctx context.Context, m *NudgeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NudgeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NudgeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NudgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NudgeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NudgeEvent mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// StudentDocClient is a client for the StudentDoc schema.
type StudentDocClient struct {
	config
}

// NewStudentDocClient returns a client for the StudentDoc from the given config.
func NewStudentDocClient(c config) *StudentDocClient {
	return &StudentDocClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentdoc.Hooks(f(g(h())))`.
func (c *StudentDocClient) Use(hooks ...Hook) {
	c.hooks.StudentDoc = append(c.hooks.StudentDoc, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentdoc.Intercept(f(g(h())))`.
func (c *StudentDocClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentDoc = append(c.inters.StudentDoc, interceptors...)
}

// Create returns a builder for creating a StudentDoc entity.
func (c *StudentDocClient) Create() *StudentDocCreate {
	mutation := newStudentDocMutation(c.config, OpCreate)
	return &StudentDocCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentDoc entities.
func (c *StudentDocClient) CreateBulk(builders ...*StudentDocCreate) *StudentDocCreateBulk {
	return &StudentDocCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentDocClient) MapCreateBulk(slice any, setFunc func(*StudentDocCreate, int)) *StudentDocCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentDocCreateBulk{err: fmt.Errorf("calling to StudentDocClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentDocCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentDocCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentDoc.
func (c *StudentDocClient) Update() *StudentDocUpdate {
	mutation := newStudentDocMutation(c.config, OpUpdate)
	return &StudentDocUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentDocClient) UpdateOne(_m *StudentDoc) *StudentDocUpdateOne {
	mutation := newStudentDocMutation(c.config, OpUpdateOne, withStudentDoc(_m))
	return &StudentDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentDocClient) UpdateOneID(id int) *StudentDocUpdateOne {
	mutation := newStudentDocMutation(c.config, OpUpdateOne, withStudentDocID(id))
	return &StudentDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentDoc.
func (c *StudentDocClient) Delete() *StudentDocDelete {
	mutation := newStudentDocMutation(c.config, OpDelete)
	return &StudentDocDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentDocClient) DeleteOne(_m *StudentDoc) *StudentDocDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentDocClient) DeleteOneID(id int) *StudentDocDeleteOne {
	builder := c.Delete().Where(studentdoc.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentDocDeleteOne{builder}
}

// Query returns a query builder for StudentDoc.
func (c *StudentDocClient) Query() *StudentDocQuery {
	return &StudentDocQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentDoc},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentDoc entity by its id.
func (c *StudentDocClient) Get(ctx context.Context, id int) (*StudentDoc, error) {
	return c.Query().Where(studentdoc.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentDocClient) GetX(ctx context.Context, id int) *StudentDoc {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentDocClient) Hooks() []Hook {
	return c.hooks.StudentDoc
}

// Interceptors returns the client interceptors.
func (c *StudentDocClient) Interceptors() []Interceptor {
	return c.inters.StudentDoc
}

func (c *StudentDocClient) mutate(ctx context.Context, m *StudentDocMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentDocCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentDocUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentDocDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentDoc mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ConfusionEvent, LLMRequestEvent, NudgeEvent, SessionEvent, StudentDoc []ent.Hook
	}
	inters struct {
		ConfusionEvent, LLMRequestEvent, NudgeEvent, SessionEvent,
		StudentDoc []ent.Interceptor
	}
)
