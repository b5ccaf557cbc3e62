package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"hotel_reservation/internal/app"
	"hotel_reservation/internal/domain"
)

// Shell is the line-oriented query front-end. It owns the command
// grammar, validates arguments before dispatching to the availability
// service, and formats every failure uniformly so a bad query never
// kills the session.
type Shell struct {
	inv   domain.Inventory
	avail *app.AvailabilityService
}

func New(inv domain.Inventory, avail *app.AvailabilityService) *Shell {
	return &Shell{inv: inv, avail: avail}
}

type command struct {
	name     string // "availability" | "search"
	hotelID  string
	arg      string // date spec or day count
	roomType string
}

// parseCommand parses one input line. A blank line yields a nil command.
func parseCommand(line string) (*command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	switch {
	case strings.HasPrefix(line, "Availability("):
		if !strings.HasSuffix(line, ")") {
			return nil, domain.NewValidation("invalid command format. Use: Availability(hotelId, date, roomType)")
		}
		params := strings.Split(strings.TrimSuffix(strings.TrimPrefix(line, "Availability("), ")"), ", ")
		if len(params) != 3 {
			return nil, domain.NewValidation("invalid number of parameters. Expected: hotelId, date, roomType")
		}
		return &command{name: "availability", hotelID: params[0], arg: params[1], roomType: params[2]}, nil

	case strings.HasPrefix(line, "Search("):
		if !strings.HasSuffix(line, ")") {
			return nil, domain.NewValidation("invalid command format. Use: Search(hotelId, days, roomType)")
		}
		params := strings.Split(strings.TrimSuffix(strings.TrimPrefix(line, "Search("), ")"), ", ")
		if len(params) != 3 {
			return nil, domain.NewValidation("invalid number of parameters. Expected: hotelId, days, roomType")
		}
		return &command{name: "search", hotelID: params[0], arg: params[1], roomType: params[2]}, nil

	default:
		return nil, domain.NewValidation("unknown command. Available commands: Availability(...), Search(...)")
	}
}

func (s *Shell) validateAvailability(c *command) error {
	if !app.ValidateHotelID(s.inv, c.hotelID) {
		return domain.NewValidation("hotel %s not found", c.hotelID)
	}
	if err := app.ValidateDateSpec(c.arg); err != nil {
		return err
	}
	if !app.ValidateRoomType(s.inv, c.hotelID, c.roomType) {
		return domain.NewValidation("room type %s not found in hotel %s", c.roomType, c.hotelID)
	}
	return nil
}

func (s *Shell) validateSearch(c *command) (int, error) {
	if !app.ValidateHotelID(s.inv, c.hotelID) {
		return 0, domain.NewValidation("hotel %s not found", c.hotelID)
	}
	days, err := app.ParseDays(c.arg)
	if err != nil {
		return 0, err
	}
	if !app.ValidateRoomType(s.inv, c.hotelID, c.roomType) {
		return 0, domain.NewValidation("room type %s not found in hotel %s", c.roomType, c.hotelID)
	}
	return days, nil
}

// Process executes one command line and returns the text to display.
// Failures come back as "Error: ..." strings; an empty line yields "".
func (s *Shell) Process(ctx context.Context, line string) string {
	out, err := s.run(ctx, line)
	if err != nil {
		if domain.KindOf(err) != domain.KindUnknown {
			return fmt.Sprintf("Error: %s", err)
		}
		return fmt.Sprintf("Unexpected error: %s", err)
	}
	return out
}

func (s *Shell) run(ctx context.Context, line string) (string, error) {
	c, err := parseCommand(line)
	if err != nil || c == nil {
		return "", err
	}

	switch c.name {
	case "availability":
		if err := s.validateAvailability(c); err != nil {
			return "", err
		}
		n, err := s.avail.CheckAvailability(ctx, c.hotelID, c.arg, c.roomType)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", n), nil

	default: // search
		days, err := s.validateSearch(c)
		if err != nil {
			return "", err
		}
		return s.avail.SearchAvailability(ctx, c.hotelID, days, c.roomType)
	}
}

// Run reads commands from r until EOF or a blank line, writing the
// prompt and each result to w.
func (s *Shell) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for {
		if _, err := fmt.Fprint(w, "> "); err != nil {
			return err
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			return nil
		}
		if out := s.Process(ctx, line); out != "" {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
}
