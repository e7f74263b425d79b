// Package archstudio is the core engine behind the security architecture
// design studio: a family of training tools where users assemble an
// architecture from trust zones, assign mitigating controls, document data
// flows, and get judged on the result.
//
// The engine is small and UI-free. Reference data (zones,
// controls, attack scenarios) lives in package catalog; the user's
// in-progress architecture in package design; the evaluators (coverage
// score, gap analysis, attack simulation, trust-jump detection) in package
// assess. This package ties them together behind the Studio facade, adding
// structured logging, optional OpenTelemetry instrumentation, and session
// storage.
//
// # Quick start
//
//	studio, err := archstudio.New(nil) // nil selects the builtin catalog
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	d := design.Default()
//	d.AssignControl(catalog.ZoneDMZ, catalog.ControlWAF)
//
//	result, err := studio.Evaluate(ctx, d)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Score, len(result.Findings))
//
// Evaluators are pure; Studio methods only add observability around them.
// Callers that do not want the facade can use the assess package directly.
package archstudio
