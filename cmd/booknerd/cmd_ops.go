package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"booknerd/internal/catalog"
	"booknerd/internal/logging"
)

// The one-shot subcommands mirror the interactive menu for scripts and
// quick edits. They print plain text and exit non-zero on failure.

// addCmd catalogs a new book
var addCmd = &cobra.Command{
	Use:   "add [title] [author] [year]",
	Short: "Add a book to the catalog",
	Long: `Validates the record, assigns the next free ID, and writes the library
file before reporting success.

Example:
  booknerd add "Dune" "Frank Herbert" 1965`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

// removeCmd drops a record by ID
var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a book by its ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

// searchCmd finds books by field
var searchCmd = &cobra.Command{
	Use:   "search [field] [query]",
	Short: "Search the catalog by title, author, or year",
	Long: `Case-insensitive substring search over one field. An unsupported field
matches nothing.

Examples:
  booknerd search author smith
  booknerd search year 19`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSearch,
}

// listCmd prints every record
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every book in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

// statusCmd flips a book between Available and CheckedOut
var statusCmd = &cobra.Command{
	Use:   "status [id] [Available|CheckedOut]",
	Short: "Update a book's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatus,
}

func runAdd(cmd *cobra.Command, args []string) error {
	title, author := args[0], args[1]
	year, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("year must be a whole number: %q", args[2])
	}

	start := time.Now()
	id, err := store.Add(title, author, year)
	logging.Audit(logging.AuditBookAdd, id, title, start, err)
	if err != nil {
		return err
	}

	logger.Info("book added", zap.Int("id", id), zap.String("title", title))
	fmt.Printf("✓ Added %q with ID %d\n", title, id)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("book ID must be a number: %q", args[0])
	}

	start := time.Now()
	err = store.Remove(id)
	logging.Audit(logging.AuditBookRemove, id, "", start, err)
	if err != nil {
		return err
	}

	logger.Info("book removed", zap.Int("id", id))
	fmt.Printf("✓ Removed book %d\n", id)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	field := args[0]
	query := strings.Join(args[1:], " ")

	matches := store.Search(query, field)
	logger.Debug("search",
		zap.String("field", field),
		zap.String("query", query),
		zap.Int("matches", len(matches)))

	if len(matches) == 0 {
		fmt.Printf("No books match %q in %s\n", query, field)
		return nil
	}

	printBooks(matches)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	books := store.ListAll()
	if len(books) == 0 {
		fmt.Println("The catalog is empty. Add a book with 'booknerd add'.")
		return nil
	}

	printBooks(books)
	noun := "books"
	if len(books) == 1 {
		noun = "book"
	}
	fmt.Printf("\n%d %s in %s\n", len(books), noun, store.Path())
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("book ID must be a number: %q", args[0])
	}
	label := args[1]

	start := time.Now()
	err = store.UpdateStatus(id, catalog.Status(label))
	logging.Audit(logging.AuditBookStatus, id, label, start, err)
	if err != nil {
		return err
	}

	logger.Info("status updated", zap.Int("id", id), zap.String("status", label))
	fmt.Printf("✓ Book %d is now %s\n", id, label)
	return nil
}

func printBooks(books []catalog.Book) {
	fmt.Printf("%-4s %-32s %-24s %-6s %s\n", "ID", "TITLE", "AUTHOR", "YEAR", "STATUS")
	for _, b := range books {
		fmt.Printf("%-4d %-32s %-24s %-6d %s\n", b.ID, b.Title, b.Author, b.Year, b.Status)
	}
}
