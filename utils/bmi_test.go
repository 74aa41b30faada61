package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 81)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(bmi-25.0) > 0.01 {
		t.Errorf("bmi = %v, want 25.0", bmi)
	}

	if _, err := CalculateBMI(0, 80); err == nil {
		t.Error("zero height should be rejected")
	}
	if _, err := CalculateBMI(180, -5); err == nil {
		t.Error("negative weight should be rejected")
	}
	if _, err := CalculateBMI(300, 80); err == nil {
		t.Error("implausible height should be rejected")
	}
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17, "Underweight"},
		{22, "Normal weight"},
		{27, "Overweight"},
		{32, "Obesity class I"},
		{37, "Obesity class II"},
		{45, "Obesity class III"},
	}
	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
