// Package datarecording stores simulation records in SQLite.
//
// Records are plain structs with scalar fields. Each struct type gets its own
// table whose columns are the struct's field names. Rows are buffered and
// written in batches inside one transaction.
package datarecording

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/structs"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// DataRecorder is a backend that can record and store data
type DataRecorder interface {
	// CreateTable creates a new table whose columns follow the fields of the
	// sample entry.
	CreateTable(tableName string, sampleEntry any)

	// InsertData buffers an entry for a table that already exists.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all tables created so far.
	ListTables() []string

	// Flush writes all buffered entries into the database.
	Flush()

	// Close flushes and closes the database.
	Close() error
}

// ErrInvalidEntry is returned when an entry has fields that cannot be stored
// in a column.
var ErrInvalidEntry = errors.New("entry is invalid")

type table struct {
	structType reflect.Type
	entries    []any
}

// SQLiteWriter is the writer that writes data into a SQLite database.
type SQLiteWriter struct {
	*sql.DB

	lock       sync.Mutex
	dbName     string
	tables     map[string]*table
	tableNames []string
	batchSize  int
	entryCount int
}

// NewSQLiteWriter creates a writer for the database at path, without the
// .sqlite3 suffix. Call Init to create the file. An empty path picks a unique
// name.
func NewSQLiteWriter(path string) *SQLiteWriter {
	return &SQLiteWriter{
		dbName:    path,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}
}

// New creates the database file and returns a writer that flushes itself when
// the process exits.
func New(path string) (*SQLiteWriter, error) {
	w := NewSQLiteWriter(path)

	if err := w.Init(); err != nil {
		return nil, err
	}

	atexit.Register(func() { w.Flush() })

	return w, nil
}

// NewWithDB creates a writer over an open database.
func NewWithDB(db *sql.DB) *SQLiteWriter {
	w := NewSQLiteWriter("")
	w.DB = db

	return w
}

// Filename returns the database file the writer writes to.
func (w *SQLiteWriter) Filename() string {
	return w.dbName + ".sqlite3"
}

// Init establishes a connection to the database. It refuses to overwrite an
// existing file.
func (w *SQLiteWriter) Init() error {
	if w.dbName == "" {
		w.dbName = "fuelsim_" + xid.New().String()
	}

	filename := w.Filename()

	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("file %s already exists", filename)
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("opening %s: %w", filename, err)
	}

	w.DB = db

	return nil
}

// WithBatchSize sets how many entries are buffered before an automatic flush.
func (w *SQLiteWriter) WithBatchSize(n int) *SQLiteWriter {
	if n <= 0 {
		panic("batch size must be positive")
	}

	w.batchSize = n

	return w
}

func isAllowedKind(kind reflect.Kind) bool {
	switch kind {
	case
		reflect.Bool,
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Float32,
		reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}

// CheckEntry tells whether an entry can be stored.
func CheckEntry(entry any) error {
	t := reflect.TypeOf(entry)
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T is not a struct", ErrInvalidEntry, entry)
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if !field.IsExported() || !isAllowedKind(field.Type.Kind()) {
			return fmt.Errorf("%w: field %s of %s",
				ErrInvalidEntry, field.Name, t.Name())
		}
	}

	return nil
}

// CreateTable creates a table. It panics if the entry cannot be stored.
func (w *SQLiteWriter) CreateTable(tableName string, sampleEntry any) {
	if err := CheckEntry(sampleEntry); err != nil {
		panic(err)
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	columns := strings.Join(structs.Names(sampleEntry), ", \n\t")
	w.mustExecute("CREATE TABLE " + tableName + " (\n\t" + columns + "\n);")

	w.tables[tableName] = &table{structType: reflect.TypeOf(sampleEntry)}
	w.tableNames = append(w.tableNames, tableName)
}

// InsertData buffers an entry. It panics if the table does not exist or the
// entry has a different type than the table.
func (w *SQLiteWriter) InsertData(tableName string, entry any) {
	w.lock.Lock()
	defer w.lock.Unlock()

	t, exists := w.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != t.structType {
		panic(fmt.Sprintf("entry of type %T does not fit table %s",
			entry, tableName))
	}

	t.entries = append(t.entries, entry)

	w.entryCount++
	if w.entryCount >= w.batchSize {
		w.flush()
	}
}

// ListTables returns the names of all tables, sorted.
func (w *SQLiteWriter) ListTables() []string {
	w.lock.Lock()
	defer w.lock.Unlock()

	names := append([]string(nil), w.tableNames...)
	sort.Strings(names)

	return names
}

// Flush writes all buffered entries.
func (w *SQLiteWriter) Flush() {
	w.lock.Lock()
	defer w.lock.Unlock()

	w.flush()
}

// Close flushes and closes the database.
func (w *SQLiteWriter) Close() error {
	w.Flush()
	return w.DB.Close()
}

func (w *SQLiteWriter) flush() {
	if w.entryCount == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	for _, name := range w.tableNames {
		t := w.tables[name]
		if len(t.entries) == 0 {
			continue
		}

		stmt := w.prepareStatement(name, t.entries[0])

		for _, entry := range t.entries {
			values := reflect.ValueOf(entry)
			args := make([]any, 0, values.NumField())

			for i := 0; i < values.NumField(); i++ {
				args = append(args, values.Field(i).Interface())
			}

			if _, err := stmt.Exec(args...); err != nil {
				panic(err)
			}
		}

		t.entries = nil

		stmt.Close()
	}

	w.entryCount = 0
}

func (w *SQLiteWriter) mustExecute(query string) sql.Result {
	res, err := w.Exec(query)
	if err != nil {
		panic(fmt.Errorf("executing %q: %w", query, err))
	}

	return res
}

func (w *SQLiteWriter) prepareStatement(tableName string, entry any) *sql.Stmt {
	placeholders := make([]string, len(structs.Names(entry)))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	query := "INSERT INTO " + tableName +
		" VALUES (" + strings.Join(placeholders, ", ") + ")"

	stmt, err := w.Prepare(query)
	if err != nil {
		panic(err)
	}

	return stmt
}
