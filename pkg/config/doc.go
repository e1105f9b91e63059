// Package config defines the declarative fit configuration consumed by the
// routing and visualization layers.
//
// A configuration describes the phase-space regions of an analysis, the
// data and simulated samples contributing to them, optional normalization
// factors, and the systematic uncertainties with their sample
// applicability. Configurations are typically written in YAML:
//
//	General:
//	  Measurement: minimal_example
//	  POI: Signal_norm
//	Regions:
//	  - Name: signal_region
//	    Variable: jet_pt
//	    Binning: [200, 300, 400, 500]
//	Samples:
//	  - Name: data
//	    Data: true
//	  - Name: signal
//	Systematics:
//	  - Name: modeling
//	    Type: NormPlusShape
//	    Samples: signal
//
// The structure is read-only after loading: it is built once during
// analysis setup and then queried while templates are enumerated.
package config
