// Package dashboard implements the monitoring draft state machine shared by the TUI, web and CLI front ends.
//
// A [Dashboard] owns one draft: the selected platform, the selected entity type, whether the URL form is
// visible, and the URL text. The draft moves through four states:
//
//	Idle ──SelectPlatform──▶ PlatformChosen ──SelectEntityType──▶ FormOpen ──Submit──▶ Submitting
//	                              ▲                                                     │
//	                              └──────────────────── success ◀───────────────────────┘
//
// The transitions [Dashboard.SelectPlatform], [Dashboard.SelectEntityType], [Dashboard.UpdateURLText] and
// [Dashboard.Submit] are the only mutators. A failed submission returns to FormOpen with the draft intact.
//
// Front ends that must not block their event loop use [Dashboard.BeginSubmit] and
// [Dashboard.CompleteSubmit] around their own call to a [services.Reporter]. Each outcome is reported as a
// [Notice], the user-facing alert text.
package dashboard
