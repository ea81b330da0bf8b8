package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRegion(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{code: "US", expected: RegionNorthAmerica},
		{code: "ca", expected: RegionNorthAmerica},
		{code: "BR", expected: RegionLatinAmerica},
		{code: " de ", expected: RegionEurope},
		{code: "AE", expected: RegionMiddleEast},
		{code: "JP", expected: RegionAsiaPacific},
		{code: "ZA", expected: RegionAfrica},
		{code: "ZZ", expected: RegionOther},
		{code: "", expected: RegionOther},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRegion(tt.code))
		})
	}
}

func TestRegionCountries(t *testing.T) {
	for _, region := range Regions {
		for _, code := range RegionCountries(region) {
			assert.Equal(t, region, ClassifyRegion(code))
		}
	}

	assert.Empty(t, RegionCountries(RegionOther))
	assert.Contains(t, RegionCountries(RegionMiddleEast), "AE")
}
