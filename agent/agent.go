// Package agent runs an interactive financial assistant backed by
// Gemini. The assistant is briefed with the current ledger report so it
// can answer questions about the user's own numbers.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const modelName = "gemini-2.5-flash"

const systemPrompt = `You are a personal finance assistant for a Brazilian user.
You are given the user's current financial report: balance, income and
expense totals, the daily breakdown, and the most recent transactions.
Amounts are in BRL unless stated otherwise. Answer questions about this
data concisely, in the language the user writes in. When the data does
not contain the answer, say so instead of guessing.`

// Advisor is the AI assistant that handles the chat session.
type Advisor struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates a new Advisor writing its output to w and reading user
// input from r.
func New(w io.Writer, r io.Reader) *Advisor {
	return &Advisor{w: w, r: bufio.NewReader(r)}
}

// Start creates the Gemini chat session and sends the briefing, the
// markdown report the assistant will answer questions about.
func (a *Advisor) Start(ctx context.Context, client *genai.Client, briefing string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}
	chat, err := client.Chats.Create(ctx, modelName, config, nil)
	if err != nil {
		return fmt.Errorf("cannot create chat session: %w", err)
	}
	a.chat = chat

	_, err = a.chat.Send(ctx, &genai.Part{Text: "Here is my current financial report:\n\n" + briefing})
	if err != nil {
		return fmt.Errorf("cannot send briefing: %w", err)
	}
	return nil
}

// Ask sends one question and returns the assistant's answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty answer from %s", modelName)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the advisor.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, briefing string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, briefing); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to grana assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		input, err := a.r.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil // Clean exit on Ctrl+D
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
