package playroom

import (
	"math"
	"slices"
	"testing"
	"time"
)

func TestAnimalEffect(t *testing.T) {
	for _, name := range Animals {
		if len(AnimalEffect(name)) == 0 {
			t.Errorf("no call for %q", name)
		}
	}
	if q := AnimalEffect("  Lion "); len(q) != 1 || q[0].Tone.Frequency != 150 {
		t.Errorf("case-folded lookup failed: %+v", q)
	}
	if q := AnimalEffect("unicorn"); q != nil {
		t.Errorf("unknown animal should be silent, got %+v", q)
	}
}

func TestShapeEffect(t *testing.T) {
	star := ShapeEffect("STAR")
	if len(star) != 5 {
		t.Fatalf("star has %d tones, want 5", len(star))
	}
	for i, s := range star {
		if s.Offset != time.Duration(i)*100*time.Millisecond || s.Tone.Frequency != 500+float64(i)*50 {
			t.Errorf("star step %d = %+v", i, s)
		}
	}
	if ShapeEffect("hexagon") != nil {
		t.Error("unknown shape should be silent")
	}
}

func TestColorEffect(t *testing.T) {
	tests := []struct {
		name string
		freq float64
	}{
		{"red", 261.63},
		{"Blue", 293.66},
		{"orange", 440},
		{"magenta", FallbackFrequency},
	}
	for _, tt := range tests {
		q := ColorEffect(tt.name)
		if len(q) != 1 || q[0].Tone.Frequency != tt.freq || q[0].Tone.Duration != 400*time.Millisecond {
			t.Errorf("ColorEffect(%q) = %+v", tt.name, q)
		}
	}
}

func TestNumberEffect(t *testing.T) {
	q := NumberEffect(3)
	if len(q) != 2 {
		t.Fatalf("got %d steps", len(q))
	}
	if q[0].Tone.Frequency != 370 {
		t.Errorf("first = %v, want 370", q[0].Tone.Frequency)
	}
	if q[1].Offset != 150*time.Millisecond || math.Abs(q[1].Tone.Frequency-462.5) > 1e-9 {
		t.Errorf("second = %+v, want 462.5 Hz at 150ms", q[1])
	}
}

func TestKeypadEffect(t *testing.T) {
	tests := []struct {
		key  string
		freq float64
	}{
		{"0", 400},
		{"7", 750},
		{"9", 850},
		{"*", FallbackFrequency},
		{"12", FallbackFrequency},
	}
	for _, tt := range tests {
		q := KeypadEffect(tt.key)
		if len(q) != 1 || q[0].Tone.Frequency != tt.freq || q[0].Tone.Waveform != WaveSquare {
			t.Errorf("KeypadEffect(%q) = %+v", tt.key, q)
		}
	}
}

func TestEffectsAreOrdered(t *testing.T) {
	all := map[string]ToneSequence{
		"click": ClickEffect, "back": BackEffect, "hangup": HangUpEffect,
		"pop": PopEffect, "clear": ClearEffect, "ring": RingEffect,
	}
	for k, q := range animalCalls {
		all["animal "+k] = q
	}
	for k, q := range shapeCalls {
		all["shape "+k] = q
	}
	for name, q := range all {
		if !q.Ordered() {
			t.Errorf("%s offsets are not ordered", name)
		}
	}
}

func TestShapeCardsAlternate(t *testing.T) {
	var cards ShapeCards
	first := cards.Tap(0, "circle", "red")
	second := cards.Tap(0, "circle", "red")
	other := cards.Tap(1, "square", "blue")

	if first[0].Tone.Frequency != 261.63 {
		t.Errorf("odd tap should name the color, got %+v", first)
	}
	if second[0].Tone.Frequency != 400 {
		t.Errorf("even tap should play the shape, got %+v", second)
	}
	if other[0].Tone.Frequency != 293.66 {
		t.Errorf("cards count taps independently, got %+v", other)
	}
	if cards.Clicks(0) != 2 || cards.Clicks(1) != 1 || cards.Clicks(5) != 0 {
		t.Errorf("clicks = %d/%d/%d", cards.Clicks(0), cards.Clicks(1), cards.Clicks(5))
	}
}

func TestEffectsAcceptRussianLabels(t *testing.T) {
	tests := []struct {
		label string
		got   ToneSequence
		want  ToneSequence
	}{
		{"Корова", AnimalEffect("Корова"), AnimalEffect("cow")},
		{"ОВЦА", AnimalEffect("ОВЦА"), AnimalEffect("sheep")},
		{"Треугольник", ShapeEffect("Треугольник"), ShapeEffect("triangle")},
		{"Красный", ColorEffect("Красный"), ColorEffect("red")},
		{"decomposed Жёлтый", ColorEffect("Же\u0308лтый"), ColorEffect("yellow")},
		{"Зеленый", ColorEffect("Зеленый"), ColorEffect("green")},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if len(tt.got) == 0 || !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}
