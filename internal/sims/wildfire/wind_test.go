package wildfire

import "testing"

func TestDirectionVectorCardinals(t *testing.T) {
	cases := []struct {
		degrees float64
		want    Vector
	}{
		{0, Vector{1, 0}},
		{45, Vector{1, 1}},
		{90, Vector{0, 1}},
		{135, Vector{-1, 1}},
		{180, Vector{-1, 0}},
		{225, Vector{-1, -1}},
		{270, Vector{0, -1}},
		{315, Vector{1, -1}},
		{360, Vector{1, 0}},
	}
	for _, tc := range cases {
		if got := DirectionVector(tc.degrees); got != tc.want {
			t.Errorf("DirectionVector(%v) = %+v, want %+v", tc.degrees, got, tc.want)
		}
	}
}

func TestDirectionVectorComponentsBounded(t *testing.T) {
	for deg := -720.0; deg <= 720.0; deg += 7.3 {
		v := DirectionVector(deg)
		if v.DX < -1 || v.DX > 1 || v.DY < -1 || v.DY > 1 {
			t.Fatalf("DirectionVector(%v) = %+v out of {-1,0,1}", deg, v)
		}
	}
}
