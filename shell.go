package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"library-system/library"
)

// session holds everything the interactive loop works against.
type session struct {
	lib   *library.Library
	creds *library.CredentialStore
	cfg   config
}

// readPassword reads a password with masking.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}

// authenticate verifies the member's password when one is set. Members
// without a password pass through.
func (s *session) authenticate(memberID string) error {
	if !s.creds.Has(memberID) {
		return nil
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	return s.creds.Authenticate(memberID, password)
}

func (s *session) run() {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the library circulation shell!")
	fmt.Println("Available commands:")
	fmt.Println("  Books: add book, remove book, list books, sort books, search book")
	fmt.Println("  Members: add member, remove member, list members, member info, set password")
	fmt.Println("  Circulation: checkout, return, reserve, cancel reservation, list loans")
	fmt.Println("  System: stats, exit")

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "add book":
			s.handleAddBook(scanner)
		case "remove book":
			s.handleRemoveBook(scanner)
		case "list books":
			s.handleListBooks()
		case "sort books":
			s.handleSortBooks(scanner)
		case "search book":
			s.handleSearchBooks(scanner)
		case "add member":
			s.handleAddMember(scanner)
		case "remove member":
			s.handleRemoveMember(scanner)
		case "list members":
			s.handleListMembers()
		case "member info":
			s.handleMemberInfo(scanner)
		case "set password":
			s.handleSetPassword(scanner)
		case "checkout":
			s.handleCheckout(scanner)
		case "return":
			s.handleReturn(scanner)
		case "reserve":
			s.handleReserve(scanner)
		case "cancel reservation":
			s.handleCancelReservation(scanner)
		case "list loans":
			s.handleListLoans()
		case "stats":
			s.handleStats()
		case "exit":
			fmt.Println("Goodbye!")
			return
		case "":
			continue
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
}

// prompt asks for one line of input and trims it.
func prompt(sc *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

// ------------------ Book commands ------------------

func (s *session) handleAddBook(sc *bufio.Scanner) {
	isbn, ok := prompt(sc, "ISBN: ")
	if !ok {
		return
	}
	title, ok := prompt(sc, "Title: ")
	if !ok {
		return
	}
	author, ok := prompt(sc, "Author: ")
	if !ok {
		return
	}
	yearStr, ok := prompt(sc, "Published year: ")
	if !ok {
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		fmt.Printf("Invalid year: %s\n", yearStr)
		return
	}

	if s.lib.Catalog().FindByISBN(isbn) != nil {
		fmt.Printf("Warning: a book with ISBN %s already exists, adding anyway.\n", isbn)
	}

	book, err := library.NewBook(isbn, title, author, year)
	if err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	if err := s.lib.Catalog().Add(book); err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	fmt.Printf("Added %s\n", book.Info())
}

func (s *session) handleRemoveBook(sc *bufio.Scanner) {
	isbn, ok := prompt(sc, "ISBN: ")
	if !ok {
		return
	}
	removed, err := s.lib.Catalog().Remove(isbn)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if !removed {
		fmt.Printf("No book with ISBN %s\n", isbn)
		return
	}
	fmt.Printf("Removed book %s\n", isbn)
}

func (s *session) handleListBooks() {
	books := s.lib.Catalog().All()
	if len(books) == 0 {
		fmt.Println("No books in library.")
		return
	}
	printBookTable(books)
}

func (s *session) handleSortBooks(sc *bufio.Scanner) {
	key, ok := prompt(sc, "Sort by (title/year): ")
	if !ok {
		return
	}
	var books []*library.Book
	switch key {
	case "title":
		books = s.lib.Catalog().SortedByTitle()
	case "year":
		books = s.lib.Catalog().SortedByYear()
	default:
		fmt.Printf("Unknown sort key: %s\n", key)
		return
	}
	if len(books) == 0 {
		fmt.Println("No books in library.")
		return
	}
	printBookTable(books)
}

func (s *session) handleSearchBooks(sc *bufio.Scanner) {
	query, ok := prompt(sc, "Query: ")
	if !ok {
		return
	}
	var results []*library.Book
	for b := range s.lib.SearchBooks(query) {
		results = append(results, b)
	}
	if len(results) == 0 {
		fmt.Printf("No books found matching '%s'.\n", query)
		return
	}
	fmt.Printf("Found %d book(s) matching '%s':\n", len(results), query)
	printBookTable(results)
}

func printBookTable(books []*library.Book) {
	fmt.Printf("%-15s %-30s %-25s %-6s %s\n", "ISBN", "Title", "Author", "Year", "Status")
	fmt.Println(strings.Repeat("-", 100))
	for _, b := range books {
		status := b.Status()
		if b.IsReserved() {
			status += fmt.Sprintf(" for %s", b.ReservedBy().Name())
		}
		fmt.Printf("%-15s %-30s %-25s %-6d %s\n",
			truncateString(b.ISBN(), 15),
			truncateString(b.Title(), 30),
			truncateString(b.Author(), 25),
			b.PublishedYear(),
			status)
	}
}

// ------------------ Member commands ------------------

func (s *session) handleAddMember(sc *bufio.Scanner) {
	memberID, ok := prompt(sc, "Member ID (blank to generate): ")
	if !ok {
		return
	}
	if memberID == "" {
		memberID = uuid.NewString()
	}
	name, ok := prompt(sc, "Name: ")
	if !ok {
		return
	}
	email, ok := prompt(sc, "Email: ")
	if !ok {
		return
	}

	member, err := library.NewMember(memberID, name, email)
	if err != nil {
		fmt.Printf("Error adding member: %v\n", err)
		return
	}
	if err := s.lib.Registry().Add(member); err != nil {
		fmt.Printf("Error adding member: %v\n", err)
		return
	}
	fmt.Printf("Added member '%s' with ID %s\n", name, memberID)

	password, err := readPassword("Password (blank for none): ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}
	if password != "" {
		if err := s.creds.Set(memberID, password); err != nil {
			fmt.Printf("Error setting password: %v\n", err)
			return
		}
		fmt.Println("Password set.")
	}
}

func (s *session) handleRemoveMember(sc *bufio.Scanner) {
	memberID, ok := prompt(sc, "Member ID: ")
	if !ok {
		return
	}
	if !s.lib.Registry().Remove(memberID) {
		fmt.Printf("No member with ID %s\n", memberID)
		return
	}
	fmt.Printf("Removed member %s\n", memberID)
}

func (s *session) handleListMembers() {
	members := s.lib.Registry().All()
	if len(members) == 0 {
		fmt.Println("No members registered.")
		return
	}
	fmt.Printf("%-38s %-25s %-25s %-12s %s\n", "ID", "Name", "Email", "Since", "Password Set")
	fmt.Println(strings.Repeat("-", 110))
	for _, m := range members {
		passwordStatus := "No"
		if s.creds.Has(m.MemberID()) {
			passwordStatus = "Yes"
		}
		fmt.Printf("%-38s %-25s %-25s %-12s %s\n",
			truncateString(m.MemberID(), 38),
			truncateString(m.Name(), 25),
			truncateString(m.Email(), 25),
			m.MemberSince().Format("2006-01-02"),
			passwordStatus)
	}
}

func (s *session) handleMemberInfo(sc *bufio.Scanner) {
	memberID, ok := prompt(sc, "Member ID: ")
	if !ok {
		return
	}
	member, err := s.lib.Registry().ByID(memberID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if member == nil {
		fmt.Printf("No member with ID %s\n", memberID)
		return
	}
	fmt.Print(member.Info())
}

func (s *session) handleSetPassword(sc *bufio.Scanner) {
	memberID, ok := prompt(sc, "Member ID: ")
	if !ok {
		return
	}
	member, err := s.lib.Registry().ByID(memberID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if member == nil {
		fmt.Printf("No member with ID %s\n", memberID)
		return
	}
	password, err := readPassword(fmt.Sprintf("New password for %s: ", member.Name()))
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}
	if err := s.creds.Set(memberID, password); err != nil {
		fmt.Printf("Error setting password: %v\n", err)
		return
	}
	fmt.Printf("Password set for %s\n", member.Name())
}

// ------------------ Circulation commands ------------------

// lookupBookAndMember resolves the ISBN and member ID prompts shared by
// the circulation commands.
func (s *session) lookupBookAndMember(sc *bufio.Scanner) (*library.Book, *library.Member, bool) {
	isbn, ok := prompt(sc, "ISBN: ")
	if !ok {
		return nil, nil, false
	}
	book := s.lib.Catalog().FindByISBN(isbn)
	if book == nil {
		fmt.Printf("No book with ISBN %s\n", isbn)
		return nil, nil, false
	}

	memberID, ok := prompt(sc, "Member ID: ")
	if !ok {
		return nil, nil, false
	}
	member, err := s.lib.Registry().ByID(memberID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, nil, false
	}
	if member == nil {
		fmt.Printf("No member with ID %s\n", memberID)
		return nil, nil, false
	}

	if err := s.authenticate(memberID); err != nil {
		fmt.Printf("Authentication failed: %v\n", err)
		return nil, nil, false
	}
	return book, member, true
}

func (s *session) handleCheckout(sc *bufio.Scanner) {
	book, member, ok := s.lookupBookAndMember(sc)
	if !ok {
		return
	}

	now := time.Now()
	loan, err := s.lib.LoanManager().CreateLoan(book, member, now, now.AddDate(0, 0, s.cfg.loanDays))
	if err != nil {
		fmt.Printf("Error checking out book: %v\n", err)
		return
	}
	fmt.Printf("Book '%s' checked out to %s, due %s\n",
		book.Title(), member.Name(), loan.DueDate().Format("2006-01-02"))
}

func (s *session) handleReturn(sc *bufio.Scanner) {
	isbn, ok := prompt(sc, "ISBN: ")
	if !ok {
		return
	}

	var loan *library.Loan
	for l := range s.lib.LoanManager().ActiveLoans() {
		if l.Book().ISBN() == isbn {
			loan = l
			break
		}
	}
	if loan == nil {
		fmt.Printf("No active loan for ISBN %s\n", isbn)
		return
	}

	if err := s.authenticate(loan.Member().MemberID()); err != nil {
		fmt.Printf("Authentication failed: %v\n", err)
		return
	}

	fee, err := s.lib.LoanManager().ReturnBook(loan, time.Now(), s.cfg.dailyFee)
	if err != nil {
		fmt.Printf("Error returning book: %v\n", err)
		return
	}
	fmt.Printf("Book '%s' returned by %s\n", loan.Book().Title(), loan.Member().Name())
	if fee > 0 {
		fmt.Printf("Late fee due: %.2f\n", fee)
	}
}

func (s *session) handleReserve(sc *bufio.Scanner) {
	book, member, ok := s.lookupBookAndMember(sc)
	if !ok {
		return
	}
	if err := s.lib.LoanManager().ReserveBook(book, member); err != nil {
		fmt.Printf("Error reserving book: %v\n", err)
		return
	}
	fmt.Printf("Book '%s' reserved for %s\n", book.Title(), member.Name())
}

func (s *session) handleCancelReservation(sc *bufio.Scanner) {
	isbn, ok := prompt(sc, "ISBN: ")
	if !ok {
		return
	}
	book := s.lib.Catalog().FindByISBN(isbn)
	if book == nil {
		fmt.Printf("No book with ISBN %s\n", isbn)
		return
	}
	if !book.IsReserved() {
		fmt.Printf("Book '%s' has no reservation.\n", book.Title())
		return
	}

	holder := book.ReservedBy()
	if err := s.authenticate(holder.MemberID()); err != nil {
		fmt.Printf("Authentication failed: %v\n", err)
		return
	}
	book.ClearReservation()
	fmt.Printf("Reservation for '%s' cancelled for %s\n", book.Title(), holder.Name())
}

func (s *session) handleListLoans() {
	loans := s.lib.LoanManager().Loans()
	if len(loans) == 0 {
		fmt.Println("No loans recorded.")
		return
	}
	fmt.Printf("%-30s %-25s %-12s %-12s %s\n", "Book", "Member", "Loaned", "Due", "Status")
	fmt.Println(strings.Repeat("-", 100))
	for _, l := range loans {
		status := "active"
		if ret, ok := l.ReturnDate(); ok {
			status = "returned " + ret.Format("2006-01-02")
		} else if l.IsOverdue() {
			status = "overdue"
		}
		fmt.Printf("%-30s %-25s %-12s %-12s %s\n",
			truncateString(l.Book().Title(), 30),
			truncateString(l.Member().Name(), 25),
			l.LoanDate().Format("2006-01-02"),
			l.DueDate().Format("2006-01-02"),
			status)
	}
}

func (s *session) handleStats() {
	fmt.Printf("Total books: %d\n", s.lib.TotalBooks())
	fmt.Printf("Borrowed books: %d\n", s.lib.BorrowedBooksCount())
	if m := s.lib.MostActiveBorrower(); m != nil {
		fmt.Printf("Most active borrower: %s (ID: %s)\n", m.Name(), m.MemberID())
	} else {
		fmt.Println("Most active borrower: none (no active loans)")
	}
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
