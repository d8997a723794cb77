// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/solveuxq/solveuxq/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/solveuxq/solveuxq/ent/llmrequestevent"
	"github.com/solveuxq/solveuxq/ent/quizattempt"
	"github.com/solveuxq/solveuxq/ent/studymaterial"
	"github.com/solveuxq/solveuxq/ent/userstats"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// QuizAttempt is the client for interacting with the QuizAttempt builders.
	QuizAttempt *QuizAttemptClient
	// StudyMaterial is the client for interacting with the StudyMaterial builders.
	StudyMaterial *StudyMaterialClient
	// UserStats is the client for interacting with the UserStats builders.
	UserStats *UserStatsClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.QuizAttempt = NewQuizAttemptClient(c.config)
	c.StudyMaterial = NewStudyMaterialClient(c.config)
	c.UserStats = NewUserStatsClient(c.config)
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
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		QuizAttempt:     NewQuizAttemptClient(cfg),
		StudyMaterial:   NewStudyMaterialClient(cfg),
		UserStats:       NewUserStatsClient(cfg),
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
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		QuizAttempt:     NewQuizAttemptClient(cfg),
		StudyMaterial:   NewStudyMaterialClient(cfg),
		UserStats:       NewUserStatsClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
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
	c.LLMRequestEvent.Use(hooks...)
	c.QuizAttempt.Use(hooks...)
	c.StudyMaterial.Use(hooks...)
	c.UserStats.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LLMRequestEvent.Intercept(interceptors...)
	c.QuizAttempt.Intercept(interceptors...)
	c.StudyMaterial.Intercept(interceptors...)
	c.UserStats.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuizAttemptMutation:
		return c.QuizAttempt.mutate(ctx, m)
	case *StudyMaterialMutation:
		return c.StudyMaterial.mutate(ctx, m)
	case *UserStatsMutation:
		return c.UserStats.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
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

// QuizAttemptClient is a client for the QuizAttempt schema.
type QuizAttemptClient struct {
	config
}

// NewQuizAttemptClient returns a client for the QuizAttempt from the given config.
func NewQuizAttemptClient(c config) *QuizAttemptClient {
	return &QuizAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizattempt.Hooks(f(g(h())))`.
func (c *QuizAttemptClient) Use(hooks ...Hook) {
	c.hooks.QuizAttempt = append(c.hooks.QuizAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizattempt.Intercept(f(g(h())))`.
func (c *QuizAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizAttempt = append(c.inters.QuizAttempt, interceptors...)
}

// Create returns a builder for creating a QuizAttempt entity.
func (c *QuizAttemptClient) Create() *QuizAttemptCreate {
	mutation := newQuizAttemptMutation(c.config, OpCreate)
	return &QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizAttempt entities.
func (c *QuizAttemptClient) CreateBulk(builders ...*QuizAttemptCreate) *QuizAttemptCreateBulk {
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizAttemptClient) MapCreateBulk(slice any, setFunc func(*QuizAttemptCreate, int)) *QuizAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizAttemptCreateBulk{err: fmt.Errorf("calling to QuizAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizAttempt.
func (c *QuizAttemptClient) Update() *QuizAttemptUpdate {
	mutation := newQuizAttemptMutation(c.config, OpUpdate)
	return &QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizAttemptClient) UpdateOne(_m *QuizAttempt) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttempt(_m))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizAttemptClient) UpdateOneID(id int) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttemptID(id))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizAttempt.
func (c *QuizAttemptClient) Delete() *QuizAttemptDelete {
	mutation := newQuizAttemptMutation(c.config, OpDelete)
	return &QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizAttemptClient) DeleteOne(_m *QuizAttempt) *QuizAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizAttemptClient) DeleteOneID(id int) *QuizAttemptDeleteOne {
	builder := c.Delete().Where(quizattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizAttemptDeleteOne{builder}
}

// Query returns a query builder for QuizAttempt.
func (c *QuizAttemptClient) Query() *QuizAttemptQuery {
	return &QuizAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizAttempt entity by its id.
func (c *QuizAttemptClient) Get(ctx context.Context, id int) (*QuizAttempt, error) {
	return c.Query().Where(quizattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizAttemptClient) GetX(ctx context.Context, id int) *QuizAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizAttemptClient) Hooks() []Hook {
	return c.hooks.QuizAttempt
}

// Interceptors returns the client interceptors.
func (c *QuizAttemptClient) Interceptors() []Interceptor {
	return c.inters.QuizAttempt
}

func (c *QuizAttemptClient) mutate(ctx context.Context, m *QuizAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizAttempt mutation op: %q", m.Op())
	}
}

// StudyMaterialClient is a client for the StudyMaterial schema.
type StudyMaterialClient struct {
	config
}

// NewStudyMaterialClient returns a client for the StudyMaterial from the given config.
func NewStudyMaterialClient(c config) *StudyMaterialClient {
	return &StudyMaterialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studymaterial.Hooks(f(g(h())))`.
func (c *StudyMaterialClient) Use(hooks ...Hook) {
	c.hooks.StudyMaterial = append(c.hooks.StudyMaterial, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studymaterial.Intercept(f(g(h())))`.
func (c *StudyMaterialClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudyMaterial = append(c.inters.StudyMaterial, interceptors...)
}

// Create returns a builder for creating a StudyMaterial entity.
func (c *StudyMaterialClient) Create() *StudyMaterialCreate {
	mutation := newStudyMaterialMutation(c.config, OpCreate)
	return &StudyMaterialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudyMaterial entities.
func (c *StudyMaterialClient) CreateBulk(builders ...*StudyMaterialCreate) *StudyMaterialCreateBulk {
	return &StudyMaterialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudyMaterialClient) MapCreateBulk(slice any, setFunc func(*StudyMaterialCreate, int)) *StudyMaterialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudyMaterialCreateBulk{err: fmt.Errorf("calling to StudyMaterialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudyMaterialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudyMaterialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudyMaterial.
func (c *StudyMaterialClient) Update() *StudyMaterialUpdate {
	mutation := newStudyMaterialMutation(c.config, OpUpdate)
	return &StudyMaterialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudyMaterialClient) UpdateOne(_m *StudyMaterial) *StudyMaterialUpdateOne {
	mutation := newStudyMaterialMutation(c.config, OpUpdateOne, withStudyMaterial(_m))
	return &StudyMaterialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudyMaterialClient) UpdateOneID(id int) *StudyMaterialUpdateOne {
	mutation := newStudyMaterialMutation(c.config, OpUpdateOne, withStudyMaterialID(id))
	return &StudyMaterialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudyMaterial.
func (c *StudyMaterialClient) Delete() *StudyMaterialDelete {
	mutation := newStudyMaterialMutation(c.config, OpDelete)
	return &StudyMaterialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudyMaterialClient) DeleteOne(_m *StudyMaterial) *StudyMaterialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudyMaterialClient) DeleteOneID(id int) *StudyMaterialDeleteOne {
	builder := c.Delete().Where(studymaterial.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudyMaterialDeleteOne{builder}
}

// Query returns a query builder for StudyMaterial.
func (c *StudyMaterialClient) Query() *StudyMaterialQuery {
	return &StudyMaterialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudyMaterial},
		inters: c.Interceptors(),
	}
}

// Get returns a StudyMaterial entity by its id.
func (c *StudyMaterialClient) Get(ctx context.Context, id int) (*StudyMaterial, error) {
	return c.Query().Where(studymaterial.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudyMaterialClient) GetX(ctx context.Context, id int) *StudyMaterial {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudyMaterialClient) Hooks() []Hook {
	return c.hooks.StudyMaterial
}

// Interceptors returns the client interceptors.
func (c *StudyMaterialClient) Interceptors() []Interceptor {
	return c.inters.StudyMaterial
}

func (c *StudyMaterialClient) mutate(ctx context.Context, m *StudyMaterialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudyMaterialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudyMaterialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudyMaterialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudyMaterialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudyMaterial mutation op: %q", m.Op())
	}
}

// UserStatsClient is a client for the UserStats schema.
type UserStatsClient struct {
	config
}

// NewUserStatsClient returns a client for the UserStats from the given config.
func NewUserStatsClient(c config) *UserStatsClient {
	return &UserStatsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userstats.Hooks(f(g(h())))`.
func (c *UserStatsClient) Use(hooks ...Hook) {
	c.hooks.UserStats = append(c.hooks.UserStats, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userstats.Intercept(f(g(h())))`.
func (c *UserStatsClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserStats = append(c.inters.UserStats, interceptors...)
}

// Create returns a builder for creating a UserStats entity.
func (c *UserStatsClient) Create() *UserStatsCreate {
	mutation := newUserStatsMutation(c.config, OpCreate)
	return &UserStatsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserStats entities.
func (c *UserStatsClient) CreateBulk(builders ...*UserStatsCreate) *UserStatsCreateBulk {
	return &UserStatsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserStatsClient) MapCreateBulk(slice any, setFunc func(*UserStatsCreate, int)) *UserStatsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserStatsCreateBulk{err: fmt.Errorf("calling to UserStatsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserStatsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserStatsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserStats.
func (c *UserStatsClient) Update() *UserStatsUpdate {
	mutation := newUserStatsMutation(c.config, OpUpdate)
	return &UserStatsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserStatsClient) UpdateOne(_m *UserStats) *UserStatsUpdateOne {
	mutation := newUserStatsMutation(c.config, OpUpdateOne, withUserStats(_m))
	return &UserStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserStatsClient) UpdateOneID(id int) *UserStatsUpdateOne {
	mutation := newUserStatsMutation(c.config, OpUpdateOne, withUserStatsID(id))
	return &UserStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserStats.
func (c *UserStatsClient) Delete() *UserStatsDelete {
	mutation := newUserStatsMutation(c.config, OpDelete)
	return &UserStatsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserStatsClient) DeleteOne(_m *UserStats) *UserStatsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserStatsClient) DeleteOneID(id int) *UserStatsDeleteOne {
	builder := c.Delete().Where(userstats.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserStatsDeleteOne{builder}
}

// Query returns a query builder for UserStats.
func (c *UserStatsClient) Query() *UserStatsQuery {
	return &UserStatsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserStats},
		inters: c.Interceptors(),
	}
}

// Get returns a UserStats entity by its id.
func (c *UserStatsClient) Get(ctx context.Context, id int) (*UserStats, error) {
	return c.Query().Where(userstats.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserStatsClient) GetX(ctx context.Context, id int) *UserStats {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserStatsClient) Hooks() []Hook {
	return c.hooks.UserStats
}

// Interceptors returns the client interceptors.
func (c *UserStatsClient) Interceptors() []Interceptor {
	return c.inters.UserStats
}

func (c *UserStatsClient) mutate(ctx context.Context, m *UserStatsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserStatsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserStatsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserStatsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserStats mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, QuizAttempt, StudyMaterial, UserStats []ent.Hook
	}
	inters struct {
		LLMRequestEvent, QuizAttempt, StudyMaterial, UserStats []ent.Interceptor
	}
)
