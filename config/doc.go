// SPDX-License-Identifier: MIT

// Package config reads experiment input files and turns them into
// simulations through a closed name registry.
//
// An input file describes one range of experiments:
//
//	{
//	  "comments": "",
//	  "ranges": {
//	    "label": "toric3d_bias_inf",
//	    "method": {"name": "direct", "parameters": {}},
//	    "code": {"name": "ToricCode3D", "parameters": [{"L_x": 3, "L_y": 3, "L_z": 3}]},
//	    "error_model": {"name": "PauliErrorModel", "parameters": {"r_x": 0, "r_y": 0, "r_z": 1}},
//	    "decoder": {"name": "SweepDecoder3D", "parameters": {}},
//	    "error_rate": [0.01, 0.02]
//	  }
//	}
//
// Every code parameter set is combined with every error rate (Input.Runs).
// Names are resolved against Registry before any trial runs; an unknown
// name fails with ErrUnknownName.
package config
