package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe_KnownCodes(t *testing.T) {
	tests := []struct {
		code      int
		condition Condition
		icon      string
	}{
		{0, ConditionClear, "01d"},
		{2, ConditionClouds, "03d"},
		{48, ConditionFog, "50d"},
		{57, ConditionDrizzle, "13d"},
		{65, ConditionRain, "10d"},
		{66, ConditionRain, "13d"},
		{77, ConditionSnow, "13d"},
		{82, ConditionRain, "09d"},
		{86, ConditionSnow, "13d"},
		{99, ConditionThunderstorm, "11d"},
	}

	for _, tt := range tests {
		sky := Describe(tt.code)
		assert.Equal(t, tt.code, sky.Code)
		assert.Equal(t, tt.condition, sky.Condition, "code %d", tt.code)
		assert.Equal(t, tt.icon, sky.Icon, "code %d", tt.code)
		assert.NotEmpty(t, sky.Description)
	}
}

func TestDescribe_UnknownCodeFallsBackToClear(t *testing.T) {
	for _, code := range []int{-1, 4, 50, 100, 9999} {
		sky := Describe(code)
		assert.Equal(t, ConditionClear, sky.Condition)
		assert.Equal(t, "clear sky", sky.Description)
		assert.Equal(t, "01d", sky.Icon)
	}
}

func TestDescribe_TableIsNotMutated(t *testing.T) {
	_ = Describe(1234)
	assert.Equal(t, 0, skies[0].Code)
}
