// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// Log sends a diagnostic message through log.log at the given severity
// (§7 log-level signal). A LogCritical message is still just a signal as
// far as the ABI is concerned - the host, not this call, decides whether
// critical logs additionally terminate the run.
func Log(h Heap, severity LogSeverity, msg string) {
	Imports.Log(int32(severity), EncodeString(h, msg))
}

func LogCriticalf(h Heap, msg string) { Log(h, LogCritical, msg) }
func LogErrorf(h Heap, msg string)    { Log(h, LogError, msg) }
func LogWarningf(h Heap, msg string)  { Log(h, LogWarning, msg) }
func LogInfof(h Heap, msg string)     { Log(h, LogInfo, msg) }
func LogDebugf(h Heap, msg string)    { Log(h, LogDebug, msg) }
