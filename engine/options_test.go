package engine

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.MaxIterations <= 0 || o.MaxStalledIterations <= 0 {
		t.Fatalf("DefaultOptions() has non-positive iteration caps: %+v", o)
	}
	if o.UnroutablePenalty != 1000 {
		t.Errorf("UnroutablePenalty = %d; want 1000", o.UnroutablePenalty)
	}
}

func TestWithMaxIterationsPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-positive MaxIterations")
		}
	}()
	WithMaxIterations(0)(&Options{})
}

func TestWithTemperaturePanicsWhenInitialNotGreaterThanFinal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when initial <= final")
		}
	}()
	WithTemperature(1, 10, 0.9)(&Options{})
}

func TestWithTemperaturePanicsOnBadCoolingRatio(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for cooling ratio outside (0,1)")
		}
	}()
	WithTemperature(100, 1, 1.5)(&Options{})
}

func TestWithTemperatureAccepted(t *testing.T) {
	o := &Options{}
	WithTemperature(100, 0.1, 0.95)(o)
	if o.TemperatureInitial != 100 || o.TemperatureFinal != 0.1 || o.CoolingRatio != 0.95 {
		t.Errorf("options = %+v; want {100, 0.1, 0.95}", o)
	}
}
