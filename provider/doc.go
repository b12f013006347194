// Package provider builds standin.Provider functions for common ways of
// looking up a target.
//
// A stand-in calls its provider on every operation. Deciding how expensive
// that call is, and how fresh its answer, is the provider's business:
//
//   - Func and FuncErr adapt plain getters.
//   - Store keeps named target slots in an xsync map; Put publishes a new
//     target to every stand-in reading the slot.
//   - Cached reads a key through a sturdyc backed CacheService, so targets
//     are refetched when their TTL runs out or the key is deleted.
//   - Record and CachedRecord load a row through a go-repository-bun
//     repository.
//   - Decoded rebuilds a target from a msgpack snapshot on every call.
//
// Example:
//
//	svc, err := provider.NewCacheService(provider.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	user, err := standin.New(provider.CachedRecord[User](ctx, svc, users, "user-123"), nil)
//	if err != nil {
//		return err
//	}
//
//	name, _ := user.Get("name", nil)
//
//	// after an update, drop every cached User so stand-ins see the new row
//	svc.DeleteByPrefix(ctx, provider.RecordKeyPrefix[User]())
package provider
