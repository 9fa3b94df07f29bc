package process

// QueryCurrentInfo queries attributes of the running process. See QueryInfo.
func QueryCurrentInfo(want FieldSet, alloc Allocator) (*Info, error) {
	return QueryInfo(Current(), want, alloc)
}

// FreeInfo releases every payload inside info through the same allocator
// that was passed to the query that produced it, then zeroes the record.
// It must be called exactly once per successfully obtained Info and never
// after a query that returned an error; failed queries release their
// partial allocations internally.
func FreeInfo(info *Info, alloc Allocator) {
	if info == nil {
		return
	}
	if alloc == nil {
		alloc = Heap
	}
	if info.Fields.Has(FieldExe) {
		alloc.Free(info.Exe)
	}
	if info.Fields.Has(FieldCmdline) {
		alloc.Free(info.Cmdline)
	}
	if info.Fields.Has(FieldUser) {
		alloc.Free(info.User)
	}
	if info.Fields.Has(FieldCwd) {
		alloc.Free(info.Cwd)
	}
	if info.Fields.Has(FieldArgs) {
		for _, a := range info.Args {
			alloc.Free(a)
		}
		alloc.Free(info.Args)
	}
	if info.Fields.Has(FieldEnv) {
		for _, e := range info.Env {
			alloc.Free(e)
		}
		alloc.Free(info.Env)
	}
	*info = Info{}
}

// releaseInfo frees whatever a query populated so far. Used on the hard
// error paths so callers never have to clean up after a failed query.
func releaseInfo(info *Info, alloc Allocator) {
	FreeInfo(info, alloc)
}
