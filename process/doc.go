// Package process provides a uniform API for enumerating, inspecting,
// creating, waiting on and releasing operating-system processes.
//
// Numeric process identifiers are recycled by the OS once a process has been
// reaped, so an ID alone can never guarantee that a later operation targets
// the process originally observed. The Handle type pairs the ID observed at
// open time with a kernel-stable reference (a pidfd on Linux, a process
// handle on Windows) so that wait, close, signal and memory operations
// performed through it always target that exact process instance.
//
// Opening an existing ID with Open is racy by construction: if the ID has
// already been recycled by the time the kernel honors the open, the handle
// legitimately refers to the new process. Handles returned by Start carry no
// such window, since the ID did not exist before the creation.
package process
