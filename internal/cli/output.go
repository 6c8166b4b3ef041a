package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case SessionCreated:
		fmt.Printf("Session: %s\n", v.ID)
	case SessionList:
		o.printSessionList(v)
	case Board:
		o.printBoard(v)
	case Team:
		o.printTeam(v)
	case TeamList:
		o.printTeamList(v)
	case Question:
		o.printQuestion(v)
	case QuestionCatalog:
		o.printCatalog(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	ID        string    `json:"id"`
	Board     string    `json:"board"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionCreated response type
type SessionCreated struct {
	ID string `json:"id"`
}

// SessionList response type
type SessionList struct {
	IDs []string `json:"ids"`
}

// Cell response type
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board response type
type Board struct {
	Answered []Cell `json:"answered"`
}

// Team response type
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	SessionID string `json:"partida_id"`
}

// TeamList response type
type TeamList struct {
	Teams []Team `json:"teams"`
}

// Question response type
type Question struct {
	Category string `json:"category"`
	Points   int    `json:"points"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuestionCatalog response type
type QuestionCatalog struct {
	Categories  []string   `json:"categories"`
	PointValues []int      `json:"point_values"`
	Questions   []Question `json:"questions"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Status: %s\n", s.Status)
	fmt.Printf("Created: %s\n", s.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Board: %s\n", s.Board)
}

func (o *Output) printSessionList(l SessionList) {
	fmt.Printf("Sessions (%d):\n", len(l.IDs))
	for _, id := range l.IDs {
		fmt.Printf("  - %s\n", id)
	}
}

const boardSize = 5

func (o *Output) printBoard(b Board) {
	answered := make(map[Cell]bool, len(b.Answered))
	for _, c := range b.Answered {
		answered[c] = true
	}

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < boardSize; col++ {
		fmt.Printf(" %d ", col)
	}
	fmt.Println()

	for row := 0; row < boardSize; row++ {
		fmt.Printf(" %d |", row)
		for col := 0; col < boardSize; col++ {
			if answered[Cell{Row: row, Col: col}] {
				fmt.Print(" X ")
			} else {
				fmt.Print(" . ")
			}
		}
		fmt.Println("|")
	}
}

func (o *Output) printTeam(t Team) {
	fmt.Printf("Team: %s (%s)\n", t.Name, t.ID)
	fmt.Printf("Score: %d\n", t.Score)
	fmt.Printf("Session: %s\n", t.SessionID)
}

func (o *Output) printTeamList(l TeamList) {
	fmt.Printf("Teams (%d):\n", len(l.Teams))
	for _, t := range l.Teams {
		fmt.Printf("  - %s (%s): %d points\n", t.Name, t.ID, t.Score)
	}
}

func (o *Output) printQuestion(q Question) {
	fmt.Printf("%s for %d:\n", q.Category, q.Points)
	fmt.Printf("  Q: %s\n", q.Question)
	fmt.Printf("  A: %s\n", q.Answer)
}

func (o *Output) printCatalog(c QuestionCatalog) {
	fmt.Printf("Categories: %v\n", c.Categories)
	fmt.Printf("Point values: %v\n", c.PointValues)
	fmt.Printf("Questions (%d):\n", len(c.Questions))
	for _, q := range c.Questions {
		fmt.Printf("  - %s / %d: %s\n", q.Category, q.Points, q.Question)
	}
}
