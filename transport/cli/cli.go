package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"royalstay/config"
	bookingDto "royalstay/internal/domains/booking/model/dto"
	bookingService "royalstay/internal/domains/booking/service"
	feedbackDto "royalstay/internal/domains/feedback/model/dto"
	feedbackService "royalstay/internal/domains/feedback/service"
	guestDto "royalstay/internal/domains/guest/model/dto"
	guestService "royalstay/internal/domains/guest/service"
	roomService "royalstay/internal/domains/room/service"
	servicereqDto "royalstay/internal/domains/servicereq/model/dto"
	servicereqService "royalstay/internal/domains/servicereq/service"
	"royalstay/shared"
)

const divider = "----------------------------------------"

// Menu is the interactive front desk console. It keeps track of the guest
// currently signed in at the terminal; booking, history, service and feedback
// options require one.
type Menu struct {
	Config   *config.Config
	Rooms    roomService.Room
	Guests   guestService.Guest
	Bookings bookingService.Booking
	Requests servicereqService.ServiceRequest
	Feedback feedbackService.Feedback

	// In and Out default to the process terminal; tests swap them for
	// buffers.
	In  io.Reader
	Out io.Writer

	currentGuestID   string
	currentGuestName string
}

func New(
	cfg *config.Config,
	rooms roomService.Room,
	guests guestService.Guest,
	bookings bookingService.Booking,
	requests servicereqService.ServiceRequest,
	feedback feedbackService.Feedback,
) *Menu {
	return &Menu{
		Config:   cfg,
		Rooms:    rooms,
		Guests:   guests,
		Bookings: bookings,
		Requests: requests,
		Feedback: feedback,
		In:       os.Stdin,
		Out:      os.Stdout,
	}
}

// Run drives the menu loop until the guest picks Exit or input runs out.
func (m *Menu) Run(ctx context.Context) {
	scanner := bufio.NewScanner(m.In)

	for {
		m.printf("\n=== %s ===\n", m.Config.App.Name)
		m.printf("1. Create Guest Account\n")
		m.printf("2. Search Available Rooms\n")
		m.printf("3. Make Booking\n")
		m.printf("4. View Reservation History\n")
		m.printf("5. Request Service\n")
		m.printf("6. Submit Feedback\n")
		m.printf("7. Exit\n")

		choice, ok := m.prompt(scanner, "Enter your choice (1-7): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.createGuestAccount(ctx, scanner)
		case "2":
			m.searchRooms(ctx)
		case "3":
			m.makeBooking(ctx, scanner)
		case "4":
			m.viewReservationHistory(ctx)
		case "5":
			m.requestService(ctx, scanner)
		case "6":
			m.submitFeedback(ctx, scanner)
		case "7":
			m.printf("Thank you for using %s!\n", m.Config.App.Name)

			return
		default:
			m.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (m *Menu) createGuestAccount(ctx context.Context, scanner *bufio.Scanner) {
	name, ok := m.prompt(scanner, "Enter your full name: ")
	if !ok {
		return
	}

	email, ok := m.prompt(scanner, "Enter your email: ")
	if !ok {
		return
	}

	contact, ok := m.prompt(scanner, "Enter your contact number: ")
	if !ok {
		return
	}

	guest, err := m.Guests.Register(ctx, guestDto.CreateGuestRequest{
		Name:    name,
		Email:   email,
		Contact: contact,
	})
	if err != nil {
		m.printError(err)

		return
	}

	m.currentGuestID = guest.ID
	m.currentGuestName = guest.Name

	m.printf("\nAccount created successfully! Welcome, %s! Your Guest ID: %s\n", guest.Name, guest.ID)
}

func (m *Menu) searchRooms(ctx context.Context) {
	rooms := m.Rooms.ListAvailable(ctx)

	if len(rooms.Rooms) == 0 {
		m.printf("\nNo rooms available.\n")

		return
	}

	m.printf("\nAvailable Rooms:\n")
	for i := range rooms.Rooms {
		m.printf("%s\n", rooms.Rooms[i].Describe())
		m.printf("%s\n", divider)
	}
}

func (m *Menu) makeBooking(ctx context.Context, scanner *bufio.Scanner) {
	if !m.requireGuest() {
		return
	}

	roomInput, ok := m.prompt(scanner, "Enter room number to book: ")
	if !ok {
		return
	}

	roomNumber, err := strconv.Atoi(roomInput)
	if err != nil {
		m.printf("Invalid room number or room not available\n")

		return
	}

	checkIn, ok := m.prompt(scanner, "Enter check-in date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	checkOut, ok := m.prompt(scanner, "Enter check-out date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	m.printf("\nPayment Options:\n")
	m.printf("1. Credit Card\n")
	m.printf("2. Mobile Wallet\n")

	payChoice, ok := m.prompt(scanner, "Select payment method (1-2): ")
	if !ok {
		return
	}

	payment := bookingDto.PaymentRequest{}

	switch payChoice {
	case "1":
		payment.Method = 1

		if payment.CardNumber, ok = m.prompt(scanner, "Enter card number: "); !ok {
			return
		}

		if payment.Expiry, ok = m.prompt(scanner, "Enter expiry (MM/YY): "); !ok {
			return
		}
	case "2":
		payment.Method = 2

		if payment.WalletType, ok = m.prompt(scanner, "Enter wallet type (e.g., PayPal, Google Pay): "); !ok {
			return
		}

		if payment.PhoneNumber, ok = m.prompt(scanner, "Enter mobile number: "); !ok {
			return
		}
	default:
		m.printf("Invalid payment choice\n")

		return
	}

	confirmation, err := m.Bookings.Book(ctx, bookingDto.CreateBookingRequest{
		GuestID:    m.currentGuestID,
		RoomNumber: roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Payment:    payment,
	})
	if err != nil {
		m.printError(err)

		return
	}

	m.printf("\nBooking Successful!\n")
	m.printf("Booking ID: %s\n", confirmation.BookingID)
	m.printf("Invoice Total: $%s\n", shared.FormatAmount(confirmation.InvoiceTotal))
	m.printf("%s\n", confirmation.Confirmation)
}

func (m *Menu) viewReservationHistory(ctx context.Context) {
	if !m.requireGuest() {
		return
	}

	history, err := m.Bookings.HistoryForGuest(ctx, m.currentGuestID)
	if err != nil {
		m.printError(err)

		return
	}

	if len(history.Bookings) == 0 {
		m.printf("You have no previous reservations.\n")

		return
	}

	m.printf("\n=== Your Reservation History ===\n")
	for i := range history.Bookings {
		booking := history.Bookings[i]

		m.printf("Booking %s: Room %d, %s to %s (%d nights), total $%s [%s]\n",
			booking.ID, booking.RoomNumber, booking.CheckIn, booking.CheckOut,
			booking.Nights, shared.FormatAmount(booking.InvoiceTotal), booking.Status)
		m.printf("%s\n", divider)
	}
}

func (m *Menu) requestService(ctx context.Context, scanner *bufio.Scanner) {
	if !m.requireGuest() {
		return
	}

	m.printf("\n=== Service Request ===\n")

	requestType, ok := m.prompt(scanner, "Enter service type (e.g., Housekeeping, Room Service): ")
	if !ok {
		return
	}

	details, ok := m.prompt(scanner, "Enter request details: ")
	if !ok {
		return
	}

	request, err := m.Requests.Create(ctx, servicereqDto.CreateServiceRequestRequest{
		GuestID: m.currentGuestID,
		Type:    requestType,
		Details: details,
	})
	if err != nil {
		m.printError(err)

		return
	}

	m.printf("\nService request submitted successfully!\n")
	m.printf("Request %s: %s [%s]\n", request.ID, request.Type, request.Status)
}

func (m *Menu) submitFeedback(ctx context.Context, scanner *bufio.Scanner) {
	if !m.requireGuest() {
		return
	}

	m.printf("\n=== Submit Feedback ===\n")

	ratingInput, ok := m.prompt(scanner, "Enter your rating (1-5): ")
	if !ok {
		return
	}

	rating, err := strconv.Atoi(ratingInput)
	if err != nil {
		m.printf("Error: rating must be a number\n")

		return
	}

	comments, ok := m.prompt(scanner, "Enter your feedback comments: ")
	if !ok {
		return
	}

	feedback, err := m.Feedback.Create(ctx, feedbackDto.CreateFeedbackRequest{
		GuestName: m.currentGuestName,
		Rating:    rating,
		Comments:  comments,
	})
	if err != nil {
		m.printError(err)

		return
	}

	m.printf("\nThank you for your feedback!\n")
	m.printf("Rating: %d/5\n", feedback.Rating)
}

func (m *Menu) requireGuest() bool {
	if m.currentGuestID == "" {
		m.printf("Please create an account or login first!\n")

		return false
	}

	return true
}

func (m *Menu) prompt(scanner *bufio.Scanner, label string) (string, bool) {
	m.printf("%s", label)

	if !scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(scanner.Text()), true
}

func (m *Menu) printError(err error) {
	m.printf("Error: %s\n", err.Error())
}

func (m *Menu) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(m.Out, format, args...); err != nil {
		log.Error().Err(err).Msg("failed to write menu output")
	}
}
