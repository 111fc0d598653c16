// ABOUTME: CLI command for the streaming dream mentor chat
// ABOUTME: REPL over a stateful session primed with today's status
package commands

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/oniromante/oniromante/internal/ai"
	"github.com/oniromante/oniromante/internal/journal"
	"github.com/oniromante/oniromante/internal/models"
)

var chatAbout string

// NewChatCmd creates the chat command.
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk with the dream mentor",
		Long: `Open a conversation with the Oniromante, your dream mentor.

The session is silently primed with today's mood and sleep record so
the mentor can calibrate its empathy. With --about, the conversation
opens on a saved dream.

Type your messages and press Enter; replies stream in as they are
generated. Type /history to review the conversation, /quit to leave.

Examples:
  oniromante chat
  oniromante chat --about dream_20260827_223000_a1b2c3d4`,
		RunE: runChat,
	}

	cmd.Flags().StringVar(&chatAbout, "about", "", "Open the conversation about a saved dream id")

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	s, backend, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	status := s.GetStatus(models.Today(time.Now()))
	session := gen.NewChatSession(status)

	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprintln(out, "🔮 The Oniromante is listening. Type /quit to leave.")
	}

	// Opening turn about a saved dream, streamed like any other
	if chatAbout != "" {
		entry := s.FindDream(chatAbout)
		if entry == nil {
			return fmt.Errorf("no dream with id %q", chatAbout)
		}
		if err := streamTurn(cmd, session, journal.MentorPrompt(entry)); err != nil {
			return err
		}
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "\nyou> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintln(out)
			return nil
		}

		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if text == "/quit" || text == "/exit" {
			return nil
		}
		if text == "/history" {
			for _, msg := range session.History() {
				fmt.Fprintf(out, "[%s] %s\n", msg.Role, msg.Text)
			}
			continue
		}

		if err := streamTurn(cmd, session, text); err != nil {
			fmt.Fprintf(out, "✗ %v\n", err)
		}
	}
}

// streamTurn sends one message and prints the reply fragments as they land.
func streamTurn(cmd *cobra.Command, session ai.ChatSession, text string) error {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, "\noniromante> ")

	fragments, errs := session.SendStream(cmd.Context(), text)
	for fragment := range fragments {
		fmt.Fprint(out, fragment)
	}
	fmt.Fprintln(out)

	if err := <-errs; err != nil {
		return err
	}
	return nil
}
