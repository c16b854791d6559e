package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/rl1809/cash-register/internal/core/domain"
	"github.com/rl1809/cash-register/internal/core/service"
)

const invalidCommand = "Invalid command. Type 'usage' for help."

// A command is a word optionally followed by non-negative integers.
var commandPattern = regexp.MustCompile(`^([a-zA-Z]+)((?:\s+\d+)*)$`)

// CLIHandler interprets line-oriented register commands.
type CLIHandler struct {
	registerService *service.RegisterService
}

func NewCLIHandler(registerService *service.RegisterService) *CLIHandler {
	return &CLIHandler{registerService: registerService}
}

// Run reads commands from in until quit or end of input.
func (h *CLIHandler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "ready")

	for scanner.Scan() {
		reply, quit := h.Execute(ctx, scanner.Text())
		fmt.Fprintln(out, reply)
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs a single command line and returns what to print. quit is
// true once the session should end.
func (h *CLIHandler) Execute(ctx context.Context, line string) (reply string, quit bool) {
	match := commandPattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return invalidCommand, false
	}

	args := make([]int, 0)
	for _, field := range strings.Fields(match[2]) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return invalidCommand, false
		}
		args = append(args, n)
	}

	switch strings.ToLower(match[1]) {
	case "help", "usage":
		return usage, false
	case "show":
		return h.registerService.Show().String(), false
	case "put", "add":
		snap, err := h.registerService.Deposit(ctx, "", args)
		if err != nil {
			return errorReply(err), false
		}
		return snap.String(), false
	case "take", "subtract":
		snap, err := h.registerService.Withdraw(ctx, "", args)
		if err != nil {
			return errorReply(err), false
		}
		return snap.String(), false
	case "change":
		if len(args) != 1 {
			return "Invalid command. change takes exactly one amount.", false
		}
		change, _, err := h.registerService.MakeChange(ctx, "", args[0])
		if err != nil {
			return errorReply(err), false
		}
		return domain.FormatAmounts(change), false
	case "exit", "quit":
		return "Bye", true
	}
	return invalidCommand, false
}

func errorReply(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return "Invalid command. " + reason(err, domain.ErrInvalidArgument)
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient money. " + reason(err, domain.ErrInsufficientFunds)
	}
	return "Error. " + err.Error()
}

// reason drops the trailing sentinel text from a wrapped error message.
func reason(err, sentinel error) string {
	return strings.TrimSuffix(err.Error(), ": "+sentinel.Error())
}

const usage = `Usage: type one of the following commands:
	show - shows cash register inventory
	put x y z - puts money in register (x, y, z... are amounts per denomination)
	take x y z - takes money from register (x, y, z... are amounts per denomination)
	change x - shows change necessary to provide x, and takes money from register.
	usage - shows usage help
	quit - exits the program`
