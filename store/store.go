package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dshills/confkit/blueprint"
	"github.com/dshills/confkit/codec"
	"github.com/dshills/confkit/value"
)

// Version is the library version written into the default file header.
const Version = "1.0.0"

// fileExt is the extension appended to the profile name.
const fileExt = ".ini"

// defaultDescription is the how-to-fill documentation written into every
// configuration file unless SetDescription overrides it.
const defaultDescription = `HOW TO FILL IN THE VALUES:

1. Text:
   - A sequence of characters between double quotes.
   - Example: "some text".

2. Integer:
   - A whole number with no decimal part.
   - Example: 123, -456.

3. Decimal:
   - A number with a decimal part, separated by a dot (not a comma).
   - Example: 3.14, -0.5.

4. Boolean:
   - A logical value, either true or false.
   - Note: the values are case-sensitive, so True and False are not valid.
   - Example: true, false.

5. List:
   - A collection of values between square brackets, separated by commas.
   - Example: [1, 2, 3], ["apple", "banana", "strawberry"].

6. Dictionary:
   - A collection of key-value pairs, with pairs separated by commas and
   each key separated from its value by a colon.
   - Example: {"key1": "value1", "key2": 42}.

7. Null:
   - An empty value. Leave the option with nothing after the = sign, or
   use the keyword null.
   - Example: option = or option = null.`

// Entry is one populated (section, option) pair with its current value.
type Entry struct {
	Section string
	Option  string
	Value   value.Value
}

// Option configures a Store at Initialize time.
type Option func(*Store)

// WithEncoding sets the text encoding of the configuration file by its
// IANA charset name. The default is utf-8.
func WithEncoding(name string) Option {
	return func(s *Store) { s.encoding = name }
}

// WithHeader overrides the first comment block of the file.
func WithHeader(text string) Option {
	return func(s *Store) { s.header = text }
}

// Store holds the blueprints and current values of one configuration
// profile and keeps them synchronized with a file on disk.
//
// A single mutex serializes every load and save, so concurrent Set
// calls never produce a torn file.
type Store struct {
	mu          sync.Mutex
	schema      *blueprint.Schema
	values      map[string]map[string]value.Value
	header      string
	description string
	encoding    string
	path        string
	directory   string
	profile     string
	initialized bool
}

// New creates an empty, uninitialized store.
func New() *Store {
	return &Store{
		schema:      blueprint.NewSchema(),
		values:      make(map[string]map[string]value.Value),
		header:      "confkit - Version: " + Version,
		description: defaultDescription,
		encoding:    "utf-8",
	}
}

// AddBlueprint declares an option. It must be called before Initialize;
// re-adding an existing (section, option) pair replaces its blueprint.
func (s *Store) AddBlueprint(bp *blueprint.Blueprint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return fmt.Errorf("%w: cannot add blueprint %s.%s",
			ErrAlreadyInitialized, bp.Section(), bp.Option())
	}
	s.schema.Add(bp)
	return nil
}

// Initialize binds the store to directory/profile.ini, creates the
// directory if needed, loads the existing file (a missing file starts
// from empty), fills missing options with their defaults, and writes
// the file back so disk and memory agree.
//
// It fails before touching the filesystem when no blueprint has been
// added, and must not be called twice.
func (s *Store) Initialize(profile, directory string, opts ...Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return ErrAlreadyInitialized
	}
	if s.schema.Len() == 0 {
		return ErrNoBlueprints
	}
	for _, opt := range opts {
		opt(s)
	}

	path := filepath.Join(directory, profile+fileExt)
	if err := ensureDirectory(directory); err != nil {
		return err
	}
	if err := s.loadLocked(path); err != nil {
		return err
	}

	s.path = path
	s.directory = directory
	s.profile = profile

	if err := s.saveLocked(); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// loadLocked parses the file at path into the value table, filling
// options absent from the file with their defaults. On any failure the
// previous table is restored before the error propagates.
func (s *Store) loadLocked(path string) error {
	lines, err := readConfigLines(path, s.encoding)
	if err != nil {
		return err
	}

	parsed, err := codec.Parse(lines, s.schema)
	if err != nil {
		var perr *codec.ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return err
	}

	for _, section := range s.schema.Sections() {
		if parsed[section] == nil {
			parsed[section] = make(map[string]value.Value)
		}
		for _, option := range s.schema.Options(section) {
			if _, ok := parsed[section][option]; !ok {
				bp, _ := s.schema.Lookup(section, option)
				parsed[section][option] = bp.Default()
			}
		}
	}

	s.values = parsed
	return nil
}

// Get returns the current value of a declared, populated option.
func (s *Store) Get(section, option string) (value.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return value.Value{}, ErrNotInitialized
	}
	v, ok := s.values[section][option]
	if !ok {
		return value.Value{}, fmt.Errorf("%w: option %q of section %q",
			ErrOptionNotFound, option, section)
	}
	return v, nil
}

// Set validates the value against the option's blueprint, stages it,
// and persists the whole store. If persistence fails the in-memory
// value is rolled back, so memory never disagrees with disk.
func (s *Store) Set(section, option string, v value.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	bp, ok := s.schema.Lookup(section, option)
	if !ok {
		return fmt.Errorf("%w: option %q of section %q",
			ErrOptionNotFound, option, section)
	}

	checked, err := bp.Validate(v)
	if err != nil {
		return err
	}

	prev, hadPrev := s.values[section][option]
	if s.values[section] == nil {
		s.values[section] = make(map[string]value.Value)
	}
	s.values[section][option] = checked

	if err := s.saveLocked(); err != nil {
		if hadPrev {
			s.values[section][option] = prev
		} else {
			delete(s.values[section], option)
		}
		return fmt.Errorf("updating option %q of section %q in the configuration file: %w",
			option, section, err)
	}
	return nil
}

// Delete always fails. A declared option exists for the lifetime of an
// initialized store.
func (s *Store) Delete(section, option string) error {
	return fmt.Errorf("%w: option %q of section %q", ErrDeleteUnsupported, option, section)
}

// Save persists the current state of the store to its file.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	return s.saveLocked()
}

// saveLocked serializes the store and writes it atomically. The caller
// holds the mutex.
func (s *Store) saveLocked() error {
	data, err := codec.Encode(s.schema, s.values, s.header, s.description)
	if err != nil {
		return err
	}
	return writeConfigFile(s.path, data, s.encoding)
}

// Entries returns every populated (section, option) pair with its
// current value, sections in declaration order and options in insertion
// order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []Entry
	for _, section := range s.schema.Sections() {
		for _, option := range s.schema.Options(section) {
			if v, ok := s.values[section][option]; ok {
				entries = append(entries, Entry{Section: section, Option: option, Value: v})
			}
		}
	}
	return entries
}

// Len returns the number of populated options.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, opts := range s.values {
		n += len(opts)
	}
	return n
}

// HasSection reports whether the section is declared.
func (s *Store) HasSection(section string) bool {
	return s.schema.HasSection(section)
}

// HasOption reports whether the option is declared. The second result
// is false when the section itself is undeclared, so callers can tell
// an unknown option apart from an unknown section.
func (s *Store) HasOption(section, option string) (hasOption, hasSection bool) {
	return s.schema.HasOption(section, option)
}

// SetDescription overrides the file's documentation block. It takes
// effect on the next save.
func (s *Store) SetDescription(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.description = text
}

// Header returns the file's header comment text.
func (s *Store) Header() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.header
}

// Description returns the file's documentation comment text.
func (s *Store) Description() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.description
}

// Path returns the configuration file path. It fails before Initialize.
func (s *Store) Path() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return "", ErrNotInitialized
	}
	return s.path, nil
}

// Directory returns the configuration directory. It fails before
// Initialize.
func (s *Store) Directory() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return "", ErrNotInitialized
	}
	return s.directory, nil
}

// Profile returns the profile name. It fails before Initialize.
func (s *Store) Profile() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return "", ErrNotInitialized
	}
	return s.profile, nil
}

// Encoding returns the IANA charset name of the file.
func (s *Store) Encoding() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.encoding
}
