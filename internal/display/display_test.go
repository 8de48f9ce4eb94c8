package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"Congrats to Alice, who wins by a score of 5 to 2", KindSuccess},
		{"Hal won!", KindSuccess},
		{"Sorry, invalid choice.", KindError},
		{"Sorry, must be y or n.", KindError},
		{"It's a tie!", KindWarning},
		{"Please choose [r]ock, [p]aper, [sc]issors, [l]izard, or [sp]ock:", KindPrompt},
		{"Would you like to play again? (y/n)", KindPrompt},
		{"Alice chose rock", KindInfo},
		{"Current score Alice: 1 Hal: 0", KindInfo},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Classify(test.input), "input: %s", test.input)
	}
}

func TestPrinterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Output("Alice chose rock")
	p.Output("Alice won!")
	p.Println(KindTitle, "Welcome")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "Alice chose rock", lines[0])
	assert.Equal(t, "Alice won!", lines[1])
	assert.Equal(t, "Welcome", strings.TrimSpace(lines[2]))
	assert.NotContains(t, buf.String(), "\x1b[", "no escape codes without color")
}

func TestPrompt(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, false)
	assert.Equal(t, "rpsls>", strings.TrimSpace(p.Prompt("rpsls> ")))
}
