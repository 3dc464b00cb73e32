package roster

// SampleRoster exposes the in-package fixture to the external service tests.
var SampleRoster = sampleRoster
