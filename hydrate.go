package reactmount

// HydrateMode defines when the client runtime mounts a lazily rendered
// component.
//
// Each mode is emitted verbatim as the data-react-hydrate attribute value;
// the hydration script is expected to interpret it. The default for Lazy is
// HydrateLoad.
type HydrateMode string

const (
	// HydrateLoad mounts the component after the page finishes loading.
	// Use for non-critical content that shouldn't block initial render.
	HydrateLoad HydrateMode = "load"

	// HydrateVisible mounts the component when its container scrolls into
	// the viewport. Use for below-the-fold content.
	HydrateVisible HydrateMode = "visible"

	// HydrateIdle mounts the component when the browser reports idle time.
	HydrateIdle HydrateMode = "idle"
)
