package support

import "slices"

// ── Provider identifiers ──────────────────────────────────────────────────────

// Identifiers of the framework's standard bootstrap providers. They are opaque
// to this package; framework/providers maps them onto real ServiceProviders.
const (
	AuthServiceProvider         = `Illuminate\Auth\AuthServiceProvider`
	BroadcastServiceProvider    = `Illuminate\Broadcasting\BroadcastServiceProvider` // real-time broadcasting (Pusher, etc.)
	BusServiceProvider          = `Illuminate\Bus\BusServiceProvider`
	CacheServiceProvider        = `Illuminate\Cache\CacheServiceProvider`
	ConcurrencyServiceProvider  = `Illuminate\Concurrency\ConcurrencyServiceProvider`
	CookieServiceProvider       = `Illuminate\Cookie\CookieServiceProvider`
	DatabaseServiceProvider     = `Illuminate\Database\DatabaseServiceProvider`
	EncryptionServiceProvider   = `Illuminate\Encryption\EncryptionServiceProvider`
	FilesystemServiceProvider   = `Illuminate\Filesystem\FilesystemServiceProvider`
	FoundationServiceProvider   = `Illuminate\Foundation\Providers\FoundationServiceProvider`
	HashServiceProvider         = `Illuminate\Hashing\HashServiceProvider`
	NotificationServiceProvider = `Illuminate\Notifications\NotificationServiceProvider`
	PaginationServiceProvider   = `Illuminate\Pagination\PaginationServiceProvider`
	PipelineServiceProvider     = `Illuminate\Pipeline\PipelineServiceProvider`
	QueueServiceProvider        = `Illuminate\Queue\QueueServiceProvider`
	RedisServiceProvider        = `Illuminate\Redis\RedisServiceProvider`
	TranslationServiceProvider  = `Illuminate\Translation\TranslationServiceProvider`
	ValidationServiceProvider   = `Illuminate\Validation\ValidationServiceProvider`
	ArtisanServiceProvider      = `Illuminate\Foundation\Providers\ArtisanServiceProvider`
	MigrationServiceProvider    = `Illuminate\Database\MigrationServiceProvider`
)

// Optional providers. Not part of the API-only default set; Merge them in
// when needed.
const (
	ConsoleSupportServiceProvider = `Illuminate\Foundation\Providers\ConsoleSupportServiceProvider`
	MailServiceProvider           = `Illuminate\Mail\MailServiceProvider`
	PasswordResetServiceProvider  = `Illuminate\Auth\Passwords\PasswordResetServiceProvider`
	SessionServiceProvider        = `Illuminate\Session\SessionServiceProvider`
	ViewServiceProvider           = `Illuminate\View\ViewServiceProvider`
)

var defaultProviders = []string{
	// Core API providers
	AuthServiceProvider,
	BroadcastServiceProvider,
	BusServiceProvider,
	CacheServiceProvider,
	ConcurrencyServiceProvider,
	CookieServiceProvider,
	DatabaseServiceProvider,
	EncryptionServiceProvider,
	FilesystemServiceProvider,
	FoundationServiceProvider,
	HashServiceProvider,
	NotificationServiceProvider,
	PaginationServiceProvider,
	PipelineServiceProvider,
	QueueServiceProvider,
	RedisServiceProvider,
	TranslationServiceProvider,
	ValidationServiceProvider,
	ArtisanServiceProvider,   // key:generate, config:clear, serve, ...
	MigrationServiceProvider, // migrate, migrate:status, ...
}

// ── DefaultProviders ──────────────────────────────────────────────────────────

// DefaultProviders is an ordered, immutable list of provider identifiers.
// It mirrors Laravel's Illuminate\Support\DefaultProviders.
//
// Every transformation returns a new value; the receiver is never modified.
// The zero value is an empty list.
//
//	// Laravel:
//	// 'providers' => ServiceProvider::defaultProviders()
//	//     ->merge([App\Providers\AppServiceProvider::class])
//	//     ->except([Illuminate\Redis\RedisServiceProvider::class])
//	//     ->toArray(),
//
//	ids := support.NewDefaultProviders().
//	    Merge("App\\Providers\\AppServiceProvider").
//	    Except(support.RedisServiceProvider).
//	    ToArray()
type DefaultProviders struct {
	providers []string
}

// Replacement swaps one provider identifier for another. Replace takes a
// slice of them so the order pairs are applied in is the caller's order.
type Replacement struct {
	From string
	To   string
}

// NewDefaultProviders creates a provider list from providers, or from the
// built-in default set when providers is empty.
func NewDefaultProviders(providers ...string) DefaultProviders {
	if len(providers) == 0 {
		return DefaultProviders{providers: slices.Clone(defaultProviders)}
	}
	return DefaultProviders{providers: slices.Clone(providers)}
}

// Merge appends providers to the end of the list. Duplicates are kept.
//
//	// Laravel: ServiceProvider::defaultProviders()->merge([...])
func (d DefaultProviders) Merge(providers ...string) DefaultProviders {
	merged := make([]string, 0, len(d.providers)+len(providers))
	merged = append(merged, d.providers...)
	merged = append(merged, providers...)
	return DefaultProviders{providers: merged}
}

// Replace applies each replacement in order to the result of the previous
// one. A replacement swaps only the first occurrence of From, scanning left
// to right, and keeps its position. Replacements whose From is not present
// are skipped.
//
//	// Laravel: ->replace([Old::class => New::class])
//	d.Replace(support.Replacement{From: support.CacheServiceProvider, To: "App\\Cache\\Provider"})
func (d DefaultProviders) Replace(replacements ...Replacement) DefaultProviders {
	current := slices.Clone(d.providers)
	for _, r := range replacements {
		if i := slices.Index(current, r.From); i >= 0 {
			current[i] = r.To
		}
	}
	return DefaultProviders{providers: current}
}

// Except removes every occurrence of the given providers. Excluding all
// entries yields an empty list, not the defaults.
//
//	// Laravel: ->except([Illuminate\Redis\RedisServiceProvider::class])
func (d DefaultProviders) Except(providers ...string) DefaultProviders {
	excluded := make(map[string]struct{}, len(providers))
	for _, p := range providers {
		excluded[p] = struct{}{}
	}

	kept := make([]string, 0, len(d.providers))
	for _, p := range d.providers {
		if _, skip := excluded[p]; !skip {
			kept = append(kept, p)
		}
	}
	return DefaultProviders{providers: kept}
}

// ToArray returns the identifiers in order. The slice is a copy.
func (d DefaultProviders) ToArray() []string {
	return slices.Clone(d.providers)
}

// Len returns the number of identifiers.
func (d DefaultProviders) Len() int { return len(d.providers) }

// Contains reports whether provider is in the list.
func (d DefaultProviders) Contains(provider string) bool {
	return slices.Contains(d.providers, provider)
}
