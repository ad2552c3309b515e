package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	DEFAULT_DB_PORT   = "5432"
	DEFAULT_HTTP_ADDR = "0.0.0.0:8080"
	ENV_FILE          = ".env"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringHost step = iota
	stepEnteringPort
	stepEnteringUser
	stepEnteringPassword
	stepEnteringDBName
	stepEnteringHTTPAddr
	stepWritingEnv
	stepProbingServer
	stepComplete
)

type model struct {
	step         step
	dbHost       string
	dbPort       string
	dbUser       string
	dbPassword   string
	dbName       string
	httpAddr     string
	currentInput string
	message      string
	quitting     bool
}

type envWrittenMsg struct{}
type healthOKMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{
		step: stepEnteringHost,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func writeEnvFile(m model) tea.Cmd {
	return func() tea.Msg {
		var b strings.Builder
		fmt.Fprintf(&b, "DB_HOST=%s\n", m.dbHost)
		fmt.Fprintf(&b, "DB_PORT=%s\n", m.dbPort)
		fmt.Fprintf(&b, "DB_USER=%s\n", m.dbUser)
		fmt.Fprintf(&b, "DB_PASSWORD=%s\n", m.dbPassword)
		fmt.Fprintf(&b, "DB_NAME=%s\n", m.dbName)
		fmt.Fprintf(&b, "HTTP_ADDR=%s\n", m.httpAddr)

		if err := os.WriteFile(ENV_FILE, []byte(b.String()), 0o600); err != nil {
			return errMsg{fmt.Errorf("failed to write %s: %w", ENV_FILE, err)}
		}

		return envWrittenMsg{}
	}
}

func probeHealth(addr string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 5 * time.Second}

		// The server listens on 0.0.0.0; probe it via localhost
		host := addr
		if strings.HasPrefix(host, "0.0.0.0") {
			host = "localhost" + strings.TrimPrefix(host, "0.0.0.0")
		}

		resp, err := client.Get(fmt.Sprintf("http://%s/health", host))
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable at %s: %w", host, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("health check returned %d", resp.StatusCode)}
		}

		return healthOKMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step <= stepEnteringHTTPAddr {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringHost:
				if m.currentInput != "" {
					m.dbHost = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPort
				}

			case stepEnteringPort:
				if m.currentInput == "" {
					m.currentInput = DEFAULT_DB_PORT
				}
				m.dbPort = m.currentInput
				m.currentInput = ""
				m.step = stepEnteringUser

			case stepEnteringUser:
				if m.currentInput != "" {
					m.dbUser = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.dbPassword = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringDBName
				}

			case stepEnteringDBName:
				if m.currentInput != "" {
					m.dbName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringHTTPAddr
				}

			case stepEnteringHTTPAddr:
				if m.currentInput == "" {
					m.currentInput = DEFAULT_HTTP_ADDR
				}
				m.httpAddr = m.currentInput
				m.currentInput = ""
				m.step = stepWritingEnv
				m.message = "Writing " + ENV_FILE + "..."
				return m, writeEnvFile(m)

			case stepProbingServer:
				// Enter skips the probe when no server is running yet
				m.step = stepComplete
				m.message = successStyle.Render("OK " + ENV_FILE + " written.\nStart the server and it will pick it up.")

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case envWrittenMsg:
		m.step = stepProbingServer
		m.message = "Checking for a running server..."
		return m, probeHealth(m.httpAddr)

	case healthOKMsg:
		m.step = stepComplete
		m.message = successStyle.Render("OK " + ENV_FILE + " written and server is healthy!")

	case errMsg:
		if m.step == stepProbingServer {
			// Not fatal: the .env is already on disk
			m.step = stepComplete
			m.message = successStyle.Render("OK "+ENV_FILE+" written.") + "\n" +
				errorStyle.Render("x "+msg.err.Error())
		} else {
			m.message = errorStyle.Render("x " + msg.err.Error())
			m.step = stepEnteringHost
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Film Rating Server Setup\n\n"))

	switch m.step {
	case stepEnteringHost:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter database host:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPort:
		s.WriteString(promptStyle.Render("Enter database port (default " + DEFAULT_DB_PORT + "):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringUser:
		s.WriteString(promptStyle.Render("Enter database user:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter database password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("*", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringDBName:
		s.WriteString(promptStyle.Render("Enter database name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringHTTPAddr:
		s.WriteString(promptStyle.Render("Enter HTTP listen address (default " + DEFAULT_HTTP_ADDR + "):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepWritingEnv:
		s.WriteString(m.message + "\n")

	case stepProbingServer:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to skip the check\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
