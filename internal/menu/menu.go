// Package menu runs the interactive loop: it prints the current directory
// and the seven options, reads a choice and its argument from the console,
// dispatches to the explorer and renders the result.
package menu

import (
	"io"
	"strconv"

	"fexplore/internal/errors"
	"fexplore/internal/explorer"
	"fexplore/internal/log"
	"fexplore/internal/ui"
)

// Choice is a menu option number
type Choice int

// Menu options, numbered as shown to the user
const (
	ListPlain Choice = iota + 1
	ListDetailed
	CreateFile
	DeleteFile
	ChangeDirectory
	SearchFile
	Exit
)

func (c Choice) String() string {
	switch c {
	case ListPlain:
		return "list"
	case ListDetailed:
		return "list-detailed"
	case CreateFile:
		return "create"
	case DeleteFile:
		return "delete"
	case ChangeDirectory:
		return "chdir"
	case SearchFile:
		return "search"
	case Exit:
		return "exit"
	default:
		return "choice(" + strconv.Itoa(int(c)) + ")"
	}
}

const (
	bannerTitle = "File Explorer Tool"
	bannerWidth = 37
)

var items = []string{
	"1. List files (names only)",
	"2. List files (detailed -> permissions, owner, size, mtime)",
	"3. Create file",
	"4. Delete file",
	"5. Change directory",
	"6. Search file (recursive)",
	"7. Exit",
}

var argumentPrompts = map[Choice]string{
	CreateFile:      "Enter filename to create: ",
	DeleteFile:      "Enter filename to delete: ",
	ChangeDirectory: "Enter directory to change to (absolute or relative): ",
	SearchFile:      "Enter filename to search for (exact name): ",
}

// Menu is the interactive loop over one Explorer
type Menu struct {
	explorer  *explorer.Explorer
	in        *tokenReader
	printer   *ui.Printer
	formatter explorer.Formatter
	banner    bool
}

// Option configures a Menu
type Option func(*Menu)

// WithFormatter sets how detailed listing rows are rendered
func WithFormatter(f explorer.Formatter) Option {
	return func(m *Menu) {
		m.formatter = f
	}
}

// WithBanner controls whether Run prints the banner before the first menu
func WithBanner(enabled bool) Option {
	return func(m *Menu) {
		m.banner = enabled
	}
}

// New creates a menu reading from in and writing through printer
func New(e *explorer.Explorer, in io.Reader, printer *ui.Printer, opts ...Option) *Menu {
	m := &Menu{
		explorer:  e,
		in:        newTokenReader(in),
		printer:   printer,
		formatter: explorer.NewFormatter(),
		banner:    true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run loops until the user picks Exit or the input ends. Operation
// failures are reported and the loop continues; only a failing input
// stream ends Run with an error.
func (m *Menu) Run() error {
	if m.banner {
		m.printer.Banner(bannerTitle, bannerWidth)
	}

	for {
		m.printMenu()

		choice, err := m.readChoice()
		if err == io.EOF {
			m.goodbye(true)
			return nil
		}
		if errors.IsInvalidInputError(err) {
			log.LogWithError(err).Debug("rejected menu input")
			m.printer.Warning("Invalid input")
			continue
		}
		if err != nil {
			return errors.Wrap(err, "reading menu choice")
		}

		done, err := m.dispatch(choice)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (m *Menu) printMenu() {
	m.printer.Printf("\nCurrent Directory: %s\n", m.explorer.Cwd())
	for _, item := range items {
		m.printer.Println(item)
	}
	m.printer.Prompt("Enter choice: ")
}

// readChoice reads one numeric token. Anything that is not a number is an
// InvalidInputError, and the rest of its line is discarded.
func (m *Menu) readChoice() (Choice, error) {
	token, err := m.in.next()
	if err != nil {
		return 0, err
	}

	n, convErr := strconv.Atoi(token)
	if convErr != nil {
		if err := m.in.discardLine(); err != nil {
			return 0, err
		}
		return 0, errors.NewInvalidInputError("menu choice is not a number", convErr).WithInput(token)
	}
	return Choice(n), nil
}

// dispatch runs one choice. done is true once the loop should stop.
func (m *Menu) dispatch(choice Choice) (done bool, err error) {
	log.LogWithFields(log.F("choice", choice.String()), log.F("cwd", m.explorer.Cwd())).Debug("dispatch")

	var arg string
	if prompt, ok := argumentPrompts[choice]; ok {
		m.printer.Prompt(prompt)
		arg, err = m.in.next()
		if err == io.EOF {
			m.goodbye(true)
			return true, nil
		}
		if err != nil {
			return false, errors.Wrap(err, "reading argument")
		}
	}

	switch choice {
	case ListPlain:
		m.list(false)
	case ListDetailed:
		m.list(true)
	case CreateFile:
		m.create(arg)
	case DeleteFile:
		m.delete(arg)
	case ChangeDirectory:
		m.chdir(arg)
	case SearchFile:
		m.search(arg)
	case Exit:
		m.goodbye(false)
		return true, nil
	default:
		m.printer.Warning("Invalid choice")
	}
	return false, nil
}

func (m *Menu) goodbye(endOfInput bool) {
	if endOfInput {
		// The prompt is still waiting on its line.
		m.printer.Println("")
	}
	m.printer.Success("Goodbye!")
}

// reason is the OS failure text of err
func reason(err error) string {
	var fileErr *errors.FileError
	if errors.As(err, &fileErr) {
		return fileErr.Reason()
	}
	return err.Error()
}

func (m *Menu) list(detailed bool) {
	dir := m.explorer.Cwd()
	names, err := m.explorer.ReadDirNames(dir)
	if err != nil {
		m.printer.Errorf("opendir failed for %s : %s", dir, reason(err))
		return
	}

	if detailed {
		m.printer.Header(m.formatter.Header())
		m.printer.Println(m.formatter.Rule())
	} else {
		m.printer.Printf("\nContents of %s:\n", dir)
	}

	for _, name := range names {
		if !detailed {
			m.printer.Println("  - " + name)
			continue
		}
		st, err := m.explorer.Lstat(dir, name)
		if err != nil {
			m.printer.Errorf("  [stat error] %s : %s", name, reason(err))
			continue
		}
		m.printer.Println(m.formatter.Row(st))
	}
}

func (m *Menu) create(name string) {
	if _, err := m.explorer.Create(name); err != nil {
		if errors.IsAlreadyExists(err) {
			m.printer.Warning("File already exists: " + name)
			return
		}
		m.printer.Errorf("create failed: %s", reason(err))
		return
	}
	m.printer.Success("File created: " + name)
}

func (m *Menu) delete(name string) {
	if _, err := m.explorer.Delete(name); err != nil {
		m.printer.Errorf("remove failed: %s", reason(err))
		return
	}
	m.printer.Success("Deleted: " + name)
}

func (m *Menu) chdir(path string) {
	dir, err := m.explorer.Chdir(path)
	if err != nil {
		m.printer.Errorf("chdir failed: %s", reason(err))
		return
	}
	m.printer.Success("Changed directory to: " + dir)
}

func (m *Menu) search(name string) {
	m.printer.Info("Searching (this may take time for large trees)...")
	n := m.explorer.Search(m.explorer.Cwd(), name, func(path string) {
		m.printer.Printf("Found: %s\n", path)
	})
	log.LogWithFields(log.F("target", name), log.F("matches", n)).Debug("search finished")
}
