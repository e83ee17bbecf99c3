package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuScenarioBorrowAndReturn(t *testing.T) {
	home := t.TempDir()

	stdin := menuInput(
		"1", "user1", "1",
		"2", "1",
		"3", "Book One", "Author A", "ISBN001",
		"3", "Book Two", "Author B", "ISBN002",
		"4", "ISBN001",
		"6",
		"5", "ISBN001",
		"7",
		"9",
		"11",
	)

	stdout, _, err := executeCLI(t, home, stdin)
	require.NoError(t, err)

	assert.Contains(t, stdout, "=== Library System ===")
	assert.Contains(t, stdout, "Member registered.")
	assert.Contains(t, stdout, "Logged in as user1.")
	assert.Equal(t, 2, strings.Count(stdout, "Book added."))
	assert.Contains(t, stdout, "Book borrowed.")
	assert.Contains(t, stdout, "Title: Book Two, Author: Author B, ISBN: ISBN002")
	assert.NotContains(t, stdout, "Title: Book One")
	assert.Contains(t, stdout, "Book returned.")
	assert.Contains(t, stdout, "Borrowed Books")
	assert.Contains(t, stdout, "No books.")
	assert.Contains(t, stdout, "Total Books: 2")
	assert.Contains(t, stdout, "Borrowed Books: 0")
	assert.Contains(t, stdout, "Goodbye!")
}

func TestMenuRejections(t *testing.T) {
	home := t.TempDir()

	stdin := menuInput(
		"4", "ISBN001",
		"5", "ISBN001",
		"7",
		"10",
		"1", "user1", "1",
		"1", "user2", "1",
		"2", "unknown",
		"2", "1",
		"4", "ISBN404",
		"5", "ISBN404",
		"42",
		"11",
	)

	stdout, _, err := executeCLI(t, home, stdin)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(stdout, "Please log in first."))
	assert.Contains(t, stdout, "No member logged in.")
	assert.Contains(t, stdout, "Member ID already exists.")
	assert.Contains(t, stdout, "Member not found.")
	assert.Contains(t, stdout, "Book is not available.")
	assert.Contains(t, stdout, "You have not borrowed a book with that ISBN.")
	assert.Contains(t, stdout, "Invalid choice.")
}

func TestMenuLoginOverwritesSession(t *testing.T) {
	home := t.TempDir()

	stdin := menuInput(
		"1", "user1", "1",
		"1", "user2", "2",
		"3", "Book One", "Author A", "ISBN001",
		"2", "1",
		"4", "ISBN001",
		"2", "2",
		"5", "ISBN001",
		"7",
		"11",
	)

	stdout, _, err := executeCLI(t, home, stdin)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Logged in as user2.")
	assert.Contains(t, stdout, "You have not borrowed a book with that ISBN.")
	assert.Contains(t, stdout, "books: 0")
}

func TestMenuSearchAndMembers(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdin := menuInput(
		"8", "one",
		"12",
		"11",
	)

	stdout, _, err := executeCLI(t, home, stdin)
	require.NoError(t, err)

	assert.Contains(t, stdout, `Search results for "one"`)
	assert.Contains(t, stdout, "Title: Book One, Author: Author A, ISBN: ISBN001")
	assert.NotContains(t, stdout, "Title: Book Two")
	assert.Contains(t, stdout, "ID: 1, Username: user1")
	assert.Contains(t, stdout, "ID: 3, Username: user3")
}

func TestMenuEndsCleanlyOnEOF(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, menuInput("1", "user1"))
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Member registered.")
}

func TestMenuAcceptsLongInputLines(t *testing.T) {
	home := t.TempDir()
	title := strings.Repeat("t", 70000)

	stdin := menuInput(
		"3", title, "Author A", "ISBN001",
		"6",
		"11",
	)

	stdout, _, err := executeCLI(t, home, stdin)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Book added.")
	assert.Contains(t, stdout, "Title: "+title+", Author: Author A, ISBN: ISBN001")
	assert.Contains(t, stdout, "Goodbye!")
}

func TestMenuReadsFinalLineWithoutNewline(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "1\nuser1\n1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Member registered.")
}

func TestMenuSubcommandRunsMenu(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, menuInput("11"), "menu")
	require.NoError(t, err)
	assert.Contains(t, stdout, "12. View All Members")
	assert.Contains(t, stdout, "Goodbye!")
}

func TestStatsFromSeedFixture(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Total Books: 2")
	assert.Contains(t, stdout, "Borrowed Books: 0")
	assert.Contains(t, stdout, "Available Books: 2")
}

func TestStatsJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "", "stats", "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var got statisticsOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, statisticsOutput{Total: 2, Borrowed: 0, Available: 2}, got)
}

func TestBooksListsSeededCatalog(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "", "books")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Available Books")
	assert.Contains(t, stdout, "Title: Book One, Author: Author A, ISBN: ISBN001")
	assert.Contains(t, stdout, "Title: Book Two, Author: Author B, ISBN: ISBN002")

	stdout, _, err = executeCLI(t, home, "", "books", "--all")
	require.NoError(t, err)
	assert.Contains(t, stdout, "All Books")
	assert.NotContains(t, stdout, "[borrowed]")
}

func TestBooksJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "", "books", "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Title\": \"Book One\"")
	assert.Contains(t, stdout, "\"ISBN\": \"ISBN002\"")
}

func TestSearchCommand(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "", "search", "TWO")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Title: Book Two")
	assert.NotContains(t, stdout, "Title: Book One")

	_, _, err = executeCLI(t, home, "", "search", "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most one keyword")
}

func TestMembersCommand(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "", "members")
	require.NoError(t, err)
	assert.Contains(t, stdout, "members: 2")
	assert.Contains(t, stdout, "ID: 1, Username: user1")

	stdout, _, err = executeCLI(t, home, "", "members", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Username\": \"user3\"")
}

func TestSeedLogsGoToStderr(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))
	t.Setenv("LIBCAT_LOG_LEVEL", "info")

	stdout, stderr, err := executeCLI(t, home, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, stderr, "catalog seeded")
	assert.NotContains(t, stdout, "catalog seeded")
}

func TestInvalidSeedFileFailsCommand(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeLibcatFile(home, "catalog.toml", "version = 9\n"))

	_, _, err := executeCLI(t, home, "", "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalog schema version 9")
}

func TestInvalidLogLevelFailsCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("LIBCAT_LOG_LEVEL", "loud")

	_, _, err := executeCLI(t, home, "", "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load configuration")
}

func TestVersionIgnoresConfigurationErrors(t *testing.T) {
	home := t.TempDir()
	t.Setenv("LIBCAT_LOG_LEVEL", "loud")

	stdout, _, err := executeCLI(t, home, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestUnknownCommand(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "", "borrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"borrow\"")
}

func TestVersionCommand(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func executeCLI(t *testing.T, home string, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func menuInput(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func writeCatalogFixture(home string) error {
	catalog := `version = 1

[[members]]
id = "1"
username = "user1"

[[members]]
id = "3"
username = "user3"

[[books]]
title = "Book One"
author = "Author A"
isbn = "ISBN001"

[[books]]
title = "Book Two"
author = "Author B"
isbn = "ISBN002"
`

	return writeLibcatFile(home, "catalog.toml", catalog)
}

func writeLibcatFile(home, name, content string) error {
	dir := filepath.Join(home, ".libcat")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
}
