package phases

import (
	pipeline_compilation "github.com/ngcompiler/ngc-go/packages/compiler/src/template/pipeline/src/compilation"
)

// OptimizeVariables optimizes variables declared and used in the IR.
// This is a placeholder implementation - full implementation should be added later.
func OptimizeVariables(job *pipeline_compilation.CompilationJob) {
	// TODO: Implement full variable optimization logic
	// This should:
	// - Transform variable declarations to side effectful expressions when variables are not used
	// - Remove variable declarations if variables are not referenced
	// - Inline variable declarations when variables are only used once
}
