package cli

import (
	"encoding/json"
	"fmt"
	"os"
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

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AdminCreated:
		o.printAdminCreated(v)
	case LoginHistory:
		o.printLoginHistory(v)
	default:
		o.printJSON(data)
	}
}

// AdminCreated reports a newly created admin account
type AdminCreated struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginRow is one line of login history
type LoginRow struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	LoginTime string `json:"login_time"`
}

// LoginHistory wraps the login rows for JSON output
type LoginHistory struct {
	Logins []LoginRow `json:"logins"`
}

func (o *Output) printAdminCreated(a AdminCreated) {
	fmt.Printf("Admin created: %s (id %d)\n", a.Username, a.ID)
}

func (o *Output) printLoginHistory(h LoginHistory) {
	if len(h.Logins) == 0 {
		fmt.Println("No logins recorded")
		return
	}
	for _, row := range h.Logins {
		fmt.Printf("%-5d %-30s %-6s %s\n", row.ID, row.Email, row.Role, row.LoginTime)
	}
}
