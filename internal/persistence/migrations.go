package persistence

// Each migration below upgrades one schema generation of a persisted
// SimulationInput/SimulationConfig record to the next, adding the field a
// later engine revision introduced with a conservative default. None of
// them touch fields a prior version already set.

// migrateV1ToV2 introduces the dual-risk-bucket TSP split (high/low risk
// fraction) that earlier records did not carry; defaults to the engine's
// standard 60/40 split.
func migrateV1ToV2(r rawRecord) (rawRecord, error) {
	if _, ok := r["high_risk_fraction"]; !ok {
		r["high_risk_fraction"] = "0.6"
	}
	return r, nil
}

// migrateV2ToV3 introduces the withdrawal_strategy field; earlier records
// implicitly used proportional sequencing.
func migrateV2ToV3(r rawRecord) (rawRecord, error) {
	if _, ok := r["withdrawal_strategy"]; !ok {
		r["withdrawal_strategy"] = map[string]interface{}{"kind": "proportional"}
	}
	return r, nil
}

// migrateV3ToV4 introduces the smile-curve expense fields; earlier
// records projected flat expenses.
func migrateV3ToV4(r rawRecord) (rawRecord, error) {
	if _, ok := r["smile_curve_enabled"]; !ok {
		r["smile_curve_enabled"] = false
	}
	return r, nil
}

// migrateV4ToV5 introduces the time_step_years field; earlier records ran
// a one-year time step.
func migrateV4ToV5(r rawRecord) (rawRecord, error) {
	if _, ok := r["time_step_years"]; !ok {
		r["time_step_years"] = float64(1)
	}
	return r, nil
}
