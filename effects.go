package playroom

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Navigation and game feedback.
var (
	ClickEffect  = Sequence(At(0, NewTone(440, 100, WaveSine)))
	BackEffect   = Sequence(At(0, NewTone(330, 150, WaveSine)), At(100, NewTone(220, 100, WaveSine)))
	HangUpEffect = Sequence(At(0, NewTone(200, 100, WaveSquare)))
	PopEffect    = Sequence(At(0, NewTone(800, 100, WaveSine)), At(80, NewTone(1000, 100, WaveSine)))
	ClearEffect  = Sequence(At(0, NewTone(600, 120, WaveSine)), At(90, NewTone(400, 150, WaveSine)))
	RingEffect   = Sequence(
		At(0, NewTone(800, 300, WaveSine)),
		At(400, NewTone(600, 300, WaveSine)),
		At(800, NewTone(800, 300, WaveSine)),
		At(1200, NewTone(600, 300, WaveSine)),
	)
)

const (
	// FallbackFrequency is used for keys that have no table entry.
	FallbackFrequency = 300.0

	keypadBase  = 400.0
	keypadStep  = 50.0
	numberBase  = 220.0
	numberStep  = 50.0
	numberRatio = 1.25
)

// Animals lists the animals that have a call, in card order.
var Animals = []string{"cow", "dog", "cat", "duck", "lion", "sheep"}

var animalCalls = map[string]ToneSequence{
	"cow":   {At(0, NewTone(200, 500, WaveSawtooth)), At(200, NewTone(150, 300, WaveSawtooth))},
	"dog":   {At(0, NewTone(300, 100, WaveSquare)), At(150, NewTone(250, 100, WaveSquare))},
	"cat":   {At(0, NewTone(400, 200, WaveSine)), At(100, NewTone(450, 150, WaveSine))},
	"duck":  {At(0, NewTone(350, 150, WaveSquare)), At(200, NewTone(300, 150, WaveSquare)), At(400, NewTone(350, 150, WaveSquare))},
	"lion":  {At(0, NewTone(150, 800, WaveSawtooth))},
	"sheep": {At(0, NewTone(250, 400, WaveSine)), At(300, NewTone(300, 200, WaveSine))},
}

var shapeCalls = map[string]ToneSequence{
	"circle":   {At(0, NewTone(400, 300, WaveSine))},
	"square":   {At(0, NewTone(300, 200, WaveSquare)), At(250, NewTone(300, 200, WaveSquare))},
	"triangle": {At(0, NewTone(350, 150, WaveSine)), At(200, NewTone(400, 150, WaveSine)), At(400, NewTone(450, 150, WaveSine))},
	"star":     starCall(),
	"heart":    {At(0, NewTone(450, 200, WaveSine)), At(100, NewTone(550, 200, WaveSine))},
	"diamond":  {At(0, NewTone(380, 150, WaveSine)), At(200, NewTone(420, 150, WaveSine)), At(400, NewTone(380, 150, WaveSine))},
}

// C major scale from middle C.
var colorFrequencies = map[string]float64{
	"red":    261.63,
	"blue":   293.66,
	"green":  329.63,
	"yellow": 349.23,
	"purple": 392.00,
	"orange": 440.00,
}

func starCall() ToneSequence {
	q := make(ToneSequence, 0, 5)
	for i := 0; i < 5; i++ {
		q = append(q, At(i*100, NewTone(500+float64(i)*50, 100, WaveSine)))
	}
	return q
}

// Russian card labels of the animal, shape and color cards.
var displayAliases = map[string]string{
	"Корова": "cow",
	"Собака": "dog",
	"Кот":    "cat",
	"Утка":   "duck",
	"Лев":    "lion",
	"Овца":   "sheep",

	"Круг":        "circle",
	"Квадрат":     "square",
	"Треугольник": "triangle",
	"Звезда":      "star",
	"Сердце":      "heart",
	"Ромб":        "diamond",

	"Красный":    "red",
	"Синий":      "blue",
	"Зелёный":    "green",
	"Зеленый":    "green",
	"Жёлтый":     "yellow",
	"Желтый":     "yellow",
	"Фиолетовый": "purple",
	"Оранжевый":  "orange",
}

var aliasKeys = func() map[string]string {
	m := make(map[string]string, len(displayAliases))
	for label, key := range displayAliases {
		m[foldName(label)] = key
	}
	return m
}()

func foldName(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}

// effectKey folds case and normalizes a display name into a table key.
// Russian card labels resolve to their English keys.
func effectKey(name string) string {
	k := foldName(name)
	if alias, ok := aliasKeys[k]; ok {
		return alias
	}
	return k
}

// AnimalEffect returns the call for the named animal, or nil for unknown
// animals.
func AnimalEffect(name string) ToneSequence {
	return animalCalls[effectKey(name)]
}

// ShapeEffect returns the sound of the named shape, or nil for unknown shapes.
func ShapeEffect(name string) ToneSequence {
	return shapeCalls[effectKey(name)]
}

// ColorEffect returns a 400 ms sine at the color's scale degree. Unknown
// colors play FallbackFrequency.
func ColorEffect(name string) ToneSequence {
	f, ok := colorFrequencies[effectKey(name)]
	if !ok {
		f = FallbackFrequency
	}
	return Sequence(At(0, NewTone(f, 400, WaveSine)))
}

// NumberEffect returns a two-note rising figure whose pitch grows with n.
func NumberEffect(n int) ToneSequence {
	f := numberBase + float64(n)*numberStep
	return Sequence(
		At(0, NewTone(f, 300, WaveSine)),
		At(150, NewTone(f*numberRatio, 200, WaveSine)),
	)
}

// KeypadEffect returns the beep of a phone key. Digits map to
// 400 + digit*50 Hz; other keys beep at FallbackFrequency.
func KeypadEffect(key string) ToneSequence {
	f := FallbackFrequency
	if d, err := strconv.Atoi(strings.TrimSpace(key)); err == nil && d >= 0 && d <= 9 {
		f = keypadBase + float64(d)*keypadStep
	}
	return Sequence(At(0, NewTone(f, 100, WaveSquare)))
}

// ShapeCards tracks taps on shape cards. Odd taps on a card name its color,
// even taps play the shape itself.
type ShapeCards struct {
	clicks map[int]int
}

// Tap registers a tap on card index and returns the effect to play.
func (s *ShapeCards) Tap(index int, shape, color string) ToneSequence {
	if s.clicks == nil {
		s.clicks = make(map[int]int)
	}
	s.clicks[index]++
	if s.clicks[index]%2 == 1 {
		return ColorEffect(color)
	}
	return ShapeEffect(shape)
}

// Clicks returns how many times card index has been tapped.
func (s *ShapeCards) Clicks(index int) int {
	return s.clicks[index]
}
