package shell_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nikolayk812/storefront-widgets/internal/cart"
	"github.com/nikolayk812/storefront-widgets/internal/catalog"
	"github.com/nikolayk812/storefront-widgets/internal/shell"
	"github.com/nikolayk812/storefront-widgets/internal/widget"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type constSource int

func (c constSource) IntN(int) int { return int(c) }

func newShell() *shell.Shell {
	return &shell.Shell{
		Catalog: catalog.Default(currency.USD),
		Cart:    cart.New(currency.USD),
		Random:  widget.NewRandomNumber(constSource(41), zerolog.Nop()),
		Form:    widget.NewRegisterForm(zerolog.Nop()),
		Survey:  widget.NewSurvey(zerolog.Nop()),
		Log:     zerolog.Nop(),
	}
}

func run(t *testing.T, s *shell.Shell, script string) string {
	t.Helper()

	var out bytes.Buffer
	err := s.Run(t.Context(), strings.NewReader(script), &out)
	require.NoError(t, err)
	return out.String()
}

func TestCartCommands(t *testing.T) {
	s := newShell()

	out := run(t, s, "add 1\nadd 2\nadd 2\nrm 1\ncart\n")

	assert.Contains(t, out, "Mi Carrito (3 artículos)")
	assert.Contains(t, out, "[2] Mouse Háptico x2  USD 129.99 c/u  = USD 259.98")
	assert.True(t, strings.HasSuffix(out, "Total: USD 259.98\n"), out)
	assert.Equal(t, 2, s.Cart.TotalItemCount())
}

func TestQuantityCommands(t *testing.T) {
	s := newShell()

	run(t, s, "add 3\nqty 3 4\ninc 3\ndec 3\ndec 3\n")

	q, ok := s.Cart.Quantity(3)
	require.True(t, ok)
	assert.Equal(t, 3, q)

	out := run(t, s, "qty 3 0\n")
	assert.Contains(t, out, "Tu carrito está vacío")
	assert.True(t, s.Cart.IsEmpty())
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantError string
	}{
		{name: "unknown command", line: "fly", wantError: `error: "fly": unknown command`},
		{name: "missing argument", line: "add", wantError: "error: usage: add <id>"},
		{name: "extra argument", line: "rm 1 2", wantError: "error: usage: rm <id>"},
		{name: "not a number", line: "add one", wantError: "error: id[one] is not a number: usage"},
		{name: "unknown product", line: "add 99", wantError: "error: product[99] not found"},
		{name: "rating out of range", line: "rate 9", wantError: "error: rating[9] not in [1,5]: rating out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, newShell(), tt.line+"\ncart\n")

			assert.Contains(t, out, tt.wantError)
			// the loop keeps going after a failed command
			assert.Contains(t, out, "Mi Carrito (0 artículos)")
		})
	}
}

func TestRandomCommand(t *testing.T) {
	out := run(t, newShell(), "random\n")

	assert.Equal(t, "Número generado: 42\n", out)
}

func TestRegisterCommands(t *testing.T) {
	s := newShell()

	out := run(t, s, "register\n")
	assert.Contains(t, out, "⚠ El nombre es requerido")
	assert.Contains(t, out, "⚠ El email es requerido")
	assert.Contains(t, out, "(Registrar deshabilitado)")

	out = run(t, s, "name Ada Lovelace\nregister\n")
	assert.Contains(t, out, `Nombre: "Ada Lovelace"`)
	assert.NotContains(t, out, "El nombre es requerido")
	assert.Contains(t, out, "⚠ El email es requerido")

	out = run(t, s, "email ada@example.com\nregister\n")
	assert.Contains(t, out, "¡Registro exitoso!")
	assert.True(t, s.Form.Submitted())

	run(t, s, "clear\n")
	assert.False(t, s.Form.Submitted())
}

func TestSurveyCommands(t *testing.T) {
	s := newShell()

	out := run(t, s, "send\nrate 3\nsend\n")
	assert.Contains(t, out, "Selecciona una calificación primero")
	assert.Contains(t, out, "Has seleccionado: 3 estrellas")
	assert.Contains(t, out, "¡Gracias por tu evaluación! Has calificado con 3 estrellas.")

	run(t, s, "reset\n")
	assert.False(t, s.Survey.CanSubmit())
}

func TestRunStops(t *testing.T) {
	t.Run("quit stops reading", func(t *testing.T) {
		s := newShell()
		run(t, s, "add 1\nquit\nadd 2\n")

		assert.Equal(t, 1, s.Cart.TotalItemCount())
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := newShell()
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		var out bytes.Buffer
		err := s.Run(ctx, strings.NewReader("add 1\n"), &out)

		require.ErrorIs(t, err, context.Canceled)
		assert.True(t, s.Cart.IsEmpty())
	})
}

func TestHelp(t *testing.T) {
	out := run(t, newShell(), "help\n")

	for _, usage := range []string{"add <id>", "qty <id> <n>", "rate <1-5>", "quit"} {
		assert.Contains(t, out, usage)
	}
}
