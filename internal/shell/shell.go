package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikolayk812/storefront-widgets/internal/cart"
	"github.com/nikolayk812/storefront-widgets/internal/port"
	"github.com/nikolayk812/storefront-widgets/internal/widget"
	"github.com/rs/zerolog"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

// Shell is a line-oriented front end for the widgets. Each input line is one
// user action and is fully applied before the next line is read.
type Shell struct {
	Catalog port.Catalog
	Cart    *cart.Manager
	Random  *widget.RandomNumber
	Form    *widget.RegisterForm
	Survey  *widget.Survey
	Log     zerolog.Logger
}

type command struct {
	usage string
	args  int // -1 for free text
	run   func(s *Shell, w io.Writer, args []string) error
}

var commands = map[string]command{
	"products": {usage: "products", run: (*Shell).products},
	"add":      {usage: "add <id>", args: 1, run: (*Shell).add},
	"qty":      {usage: "qty <id> <n>", args: 2, run: (*Shell).qty},
	"inc":      {usage: "inc <id>", args: 1, run: (*Shell).inc},
	"dec":      {usage: "dec <id>", args: 1, run: (*Shell).dec},
	"rm":       {usage: "rm <id>", args: 1, run: (*Shell).rm},
	"cart":     {usage: "cart", run: (*Shell).cart},
	"random":   {usage: "random", run: (*Shell).random},
	"name":     {usage: "name <text>", args: -1, run: (*Shell).name},
	"email":    {usage: "email <text>", args: -1, run: (*Shell).email},
	"register": {usage: "register", run: (*Shell).register},
	"clear":    {usage: "clear", run: (*Shell).clearForm},
	"rate":     {usage: "rate <1-5>", args: 1, run: (*Shell).rate},
	"send":     {usage: "send", run: (*Shell).send},
	"reset":    {usage: "reset", run: (*Shell).resetSurvey},
}

var order = []string{
	"products", "add", "qty", "inc", "dec", "rm", "cart",
	"random",
	"name", "email", "register", "clear",
	"rate", "send", "reset",
}

// Run reads commands from r until EOF, "quit" or ctx is cancelled.
// Command errors are reported to w and do not stop the loop.
func (s *Shell) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		if err := s.Exec(w, line); err != nil {
			s.Log.Debug().Err(err).Str("line", line).Msg("shell_command_failed")
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Scan: %w", err)
	}
	return nil
}

// Exec runs a single command line.
func (s *Shell) Exec(w io.Writer, line string) error {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	if name == "help" {
		s.help(w)
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}

	var args []string
	switch {
	case cmd.args < 0:
		args = []string{strings.TrimSpace(rest)}
	default:
		args = strings.Fields(rest)
		if len(args) != cmd.args {
			return fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
		}
	}

	return cmd.run(s, w, args)
}

func (s *Shell) help(w io.Writer) {
	fmt.Fprintln(w, "commands:")
	for _, name := range order {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(w, "  quit")
}

func (s *Shell) products(w io.Writer, _ []string) error {
	fmt.Fprintln(w, "Productos Disponibles")
	for _, p := range s.Catalog.Products() {
		fmt.Fprintf(w, "  [%d] %s  %s\n", p.ID, p.Name, p.Price)
	}
	return nil
}

func (s *Shell) add(w io.Writer, args []string) error {
	id, err := parseInt(args[0], "id")
	if err != nil {
		return err
	}

	p, ok := s.Catalog.Product(id)
	if !ok {
		return fmt.Errorf("product[%d] not found", id)
	}

	s.Cart.AddItem(p)
	return s.cart(w, nil)
}

func (s *Shell) qty(w io.Writer, args []string) error {
	id, err := parseInt(args[0], "id")
	if err != nil {
		return err
	}
	n, err := parseInt(args[1], "quantity")
	if err != nil {
		return err
	}

	s.Cart.SetQuantity(id, n)
	return s.cart(w, nil)
}

func (s *Shell) inc(w io.Writer, args []string) error {
	id, err := parseInt(args[0], "id")
	if err != nil {
		return err
	}

	s.Cart.Increment(id)
	return s.cart(w, nil)
}

func (s *Shell) dec(w io.Writer, args []string) error {
	id, err := parseInt(args[0], "id")
	if err != nil {
		return err
	}

	s.Cart.Decrement(id)
	return s.cart(w, nil)
}

func (s *Shell) rm(w io.Writer, args []string) error {
	id, err := parseInt(args[0], "id")
	if err != nil {
		return err
	}

	s.Cart.RemoveItem(id)
	return s.cart(w, nil)
}

func (s *Shell) cart(w io.Writer, _ []string) error {
	fmt.Fprintf(w, "Mi Carrito (%s)\n", s.Cart.ItemCountLabel())
	if s.Cart.IsEmpty() {
		fmt.Fprintln(w, "  Tu carrito está vacío")
		return nil
	}

	for _, line := range s.Cart.Lines() {
		fmt.Fprintf(w, "  [%d] %s x%d  %s c/u  = %s\n",
			line.Product.ID, line.Product.Name, line.Quantity, line.Product.Price, line.Subtotal)
	}
	fmt.Fprintf(w, "Total: %s\n", s.Cart.GrandTotal())
	return nil
}

func (s *Shell) random(w io.Writer, _ []string) error {
	s.Random.Generate()
	fmt.Fprintln(w, s.Random.Label())
	return nil
}

func (s *Shell) name(w io.Writer, args []string) error {
	s.Form.SetName(args[0])
	return s.printForm(w)
}

func (s *Shell) email(w io.Writer, args []string) error {
	s.Form.SetEmail(args[0])
	return s.printForm(w)
}

func (s *Shell) register(w io.Writer, _ []string) error {
	if s.Form.Submit() {
		fmt.Fprintln(w, "¡Registro exitoso!")
		return nil
	}
	return s.printForm(w)
}

func (s *Shell) clearForm(w io.Writer, _ []string) error {
	s.Form.Reset()
	return s.printForm(w)
}

func (s *Shell) printForm(w io.Writer) error {
	fmt.Fprintf(w, "Nombre: %q\n", s.Form.Name())
	fmt.Fprintf(w, "Email: %q\n", s.Form.Email())

	errs := s.Form.Errors()
	for _, field := range []string{widget.FieldName, widget.FieldEmail} {
		if msg, ok := errs[field]; ok {
			fmt.Fprintf(w, "  ⚠ %s\n", msg)
		}
	}
	if !s.Form.CanSubmit() {
		fmt.Fprintln(w, "  (Registrar deshabilitado)")
	}
	return nil
}

func (s *Shell) rate(w io.Writer, args []string) error {
	r, err := parseInt(args[0], "rating")
	if err != nil {
		return err
	}

	if err := s.Survey.Select(r); err != nil {
		return err
	}

	fmt.Fprintf(w, "Has seleccionado: %s\n", s.Survey.Label())
	return nil
}

func (s *Shell) send(w io.Writer, _ []string) error {
	if !s.Survey.Submit() {
		fmt.Fprintln(w, "Selecciona una calificación primero")
		return nil
	}
	fmt.Fprintln(w, s.Survey.Confirmation())
	return nil
}

func (s *Shell) resetSurvey(w io.Writer, _ []string) error {
	s.Survey.Reset()
	fmt.Fprintln(w, "Encuesta reiniciada")
	return nil
}

func parseInt(raw, what string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s[%s] is not a number: %w", what, raw, ErrUsage)
	}
	return n, nil
}
