package widget

import (
	"math/rand/v2"
	"strconv"

	"github.com/nikolayk812/storefront-widgets/internal/port"
	"github.com/rs/zerolog"
)

const (
	RandomMin = 1
	RandomMax = 100
)

// RandomNumber remembers the last number drawn from [RandomMin, RandomMax].
type RandomNumber struct {
	src   port.RandomSource
	value int
	set   bool
	log   zerolog.Logger
}

func NewRandomNumber(src port.RandomSource, log zerolog.Logger) *RandomNumber {
	if src == nil {
		src = NewRandomSource(nil)
	}
	return &RandomNumber{src: src, log: log}
}

// NewRandomSource returns a PCG source. A nil seed draws one from the runtime.
func NewRandomSource(seed *uint64) port.RandomSource {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}

func (r *RandomNumber) Generate() int {
	r.value = r.src.IntN(RandomMax-RandomMin+1) + RandomMin
	r.set = true
	r.log.Debug().Int("value", r.value).Msg("random_number_generated")
	return r.value
}

func (r *RandomNumber) Value() (int, bool) {
	return r.value, r.set
}

func (r *RandomNumber) Label() string {
	if !r.set {
		return "Haz clic para generar un número aleatorio"
	}
	return "Número generado: " + strconv.Itoa(r.value)
}
