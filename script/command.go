package script

import (
	"errors"
	"log/slog"
	"strings"
)

// Op identifies a command.
type Op int

// Commands, in the order listed by [Ops]. OpNone is a blank or comment line.
const (
	OpNone Op = iota
	OpBegin
	OpAssign
	OpPrint
	OpEnd
)

var opName = map[Op]string{
	OpBegin:  "begin",
	OpAssign: "assign",
	OpPrint:  "print",
	OpEnd:    "end",
}

func (o Op) String() string {
	if s, ok := opName[o]; ok {
		return s
	}

	return ""
}

// Ops returns the command keywords.
func Ops() []string {
	return []string{
		OpBegin.String(),
		OpAssign.String(),
		OpPrint.String(),
		OpEnd.String(),
	}
}

// Usage returns the command syntax of o.
func (o Op) Usage() string {
	switch o {
	case OpBegin, OpEnd:
		return o.String()
	case OpAssign:
		return "assign NAME VALUE [NATURE [TYPE [ADDRESS]]]"
	case OpPrint:
		return "print NAME"
	case OpNone:
	}

	return ""
}

const commentPrefix = "#"

// Command is one parsed line.
//
// Value holds the unevaluated VALUE field of an assign command; it is
// evaluated against the active scope when the command runs.
type Command struct {
	Op      Op
	Name    string
	Value   string
	Nature  string
	Type    string
	Address int64
}

// LogValue implements slog.LogValuer.
func (c Command) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("op", c.Op.String())}

	if c.Name != "" {
		attrs = append(attrs, slog.String("name", c.Name))
	}

	if c.Op == OpAssign {
		attrs = append(attrs, slog.String("value", c.Value))
	}

	return slog.GroupValue(attrs...)
}

// Parse parses one line.
//
// Parse does not evaluate VALUE and does not check that an assign supplies a
// nature; [Interpreter.Exec] fills in the default.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], commentPrefix) {
		return Command{Op: OpNone}, nil
	}

	args := fields[1:]

	switch word := fields[0]; word {
	case "begin":
		return parseBare(OpBegin, args)
	case "end":
		return parseBare(OpEnd, args)
	case "print":
		if len(args) != 1 {
			return Command{}, syntaxError(OpPrint, args)
		}

		return Command{Op: OpPrint, Name: args[0]}, nil
	case "assign":
		return parseAssign(args)
	default:
		return Command{}, ErrUnknownCommand.With(slog.String("command", word))
	}
}

func parseBare(op Op, args []string) (Command, error) {
	if len(args) != 0 {
		return Command{}, syntaxError(op, args)
	}

	return Command{Op: op}, nil
}

func parseAssign(args []string) (Command, error) {
	const minArgs, maxArgs = 2, 5

	if len(args) < minArgs || len(args) > maxArgs {
		return Command{}, syntaxError(OpAssign, args)
	}

	cmd := Command{Op: OpAssign, Name: args[0], Value: args[1]}

	if len(args) > 2 {
		cmd.Nature = args[2]
	}

	if len(args) > 3 {
		cmd.Type = args[3]
	}

	if len(args) > 4 {
		addr, err := parseInt(args[4])
		if err != nil {
			return Command{}, ErrSyntax.
				Wrap(errors.New("address must be an integer")).
				With(slog.String("address", args[4]))
		}

		cmd.Address = addr
	}

	return cmd, nil
}

func syntaxError(op Op, args []string) error {
	return ErrSyntax.
		Wrap(errors.New("usage: " + op.Usage())).
		With(slog.String("command", op.String()), slog.Int("args", len(args)))
}
