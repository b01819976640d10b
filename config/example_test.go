package config_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvqec/config"
	"github.com/katalvlaran/lvqec/gf2"
)

func ExampleParseRange() {
	rates, _ := config.ParseRange("0.01:0.03:0.01")
	fmt.Println(rates)
	// Output: [0.01 0.02 0.03]
}

func ExampleGenerateInputs() {
	ins, err := config.GenerateInputs(config.GenerateOptions{
		CodeName:   config.ToricCode3D,
		Sizes:      []int{4, 6, 8},
		Decoder:    config.Component{Name: config.SweepDecoder3D},
		Bias:       gf2.Z,
		Etas:       []float64{10, math.Inf(1)},
		ErrorRates: []float64{0.1, 0.2},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, in := range ins {
		fmt.Println(in.Label, len(in.Runs()), in.ErrorModel.Params.Float("r_z", 0))
	}
	// Output:
	// input_bias_10 6 0.9090909090909091
	// input_bias_inf 6 1
}
