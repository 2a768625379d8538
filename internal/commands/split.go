package commands

import (
	"errors"
	"strconv"
	"strings"
)

// User-facing messages shared across commands. Texts match the assistant's
// established voice.
const (
	msgMissingDetails = "Please complete your request by specifying the details of the task!"
	msgMissingNumber  = "Please specify the task number!"
	msgMissingRemoval = "Please specify which task number you want to remove!"
	msgInvalidNumber  = "Invalid task number. Please refer to your to-do list again."
	msgNotUnderstood  = "I'm sorry, I don't understand! Please type your request again."
	msgDeadlineFormat = "Invalid input format for deadline. Please provide a valid date/time."
	msgEventFormat    = "Invalid input format for event. Please provide valid date/time."
	msgEventBadDates  = "Invalid input format for event. Please provide valid dates."
)

// splitOnce splits s on the first occurrence of the literal delimiter.
// Descriptions containing the delimiter as a substring are split at it;
// there is no escaping.
func splitOnce(s, delim string) (before, after string, ok bool) {
	return strings.Cut(s, delim)
}

// Index parse failures, distinguished so commands can pick the right
// message.
var (
	errNoIndex  = errors.New("no task number given")
	errBadIndex = errors.New("invalid task number")
)

// parseIndex reads the first whitespace-separated token of arg as a
// 1-based task number and translates it to a 0-based index, bounds-checked
// against size.
func parseIndex(arg string, size int) (int, error) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return 0, errNoIndex
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, errBadIndex
	}
	i := n - 1
	if i < 0 || i >= size {
		return 0, errBadIndex
	}
	return i, nil
}
