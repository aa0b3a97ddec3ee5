package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianedu/portal/core/user"
)

func newTestCLI(input string) *commandLine {
	return &commandLine{in: bufio.NewScanner(strings.NewReader(input))}
}

func Test_commandLine_readLine(t *testing.T) {
	cli := newTestCLI("  Alex Johnson  \nsecond\n")
	assert.Equal(t, "Alex Johnson", cli.readLine(""))
	assert.Equal(t, "second", cli.readLine(""))
	assert.Empty(t, cli.readLine(""), "exhausted input reads as empty")
}

func Test_commandLine_readRole(t *testing.T) {
	// invalid choices are re-prompted until one of the two roles is picked
	cli := newTestCLI("0\nstudent\n2\n1\n")
	assert.Equal(t, user.RoleTeacher, cli.readRole())
	assert.Equal(t, user.RoleStudent, cli.readRole())
}

func Test_commandLine_readInt(t *testing.T) {
	cli := newTestCLI("abc\n\n42\n")
	assert.Equal(t, 42, cli.readInt(""))
}
