// Package config defines the format-agnostic model of a JVM-tuning
// experiment configuration, along with the Loader interface for
// populating it from a concrete on-disk format.
//
// The model mirrors the four scope levels of the experiment hierarchy
// (Program → Cluster → SubjectGroup → Subject). A value set at an inner
// scope overrides the same value inherited from an outer scope; unset
// fields are pointer-typed so that "absent" stays distinguishable from a
// zero value. The `config.ProgramConfig` is the single source of truth
// for the resolver package. Concrete implementations of the Loader
// interface, such as for HCL and YAML, are provided in separate packages.
package config
