// Package metrics defines all custom Prometheus metrics for the portfolio
// API. It is the single source of truth for metric names, labels and help
// strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PasswordChangesTotal counts successful password rotations.
var PasswordChangesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of successful password changes.",
	},
)

// ContactsSubmittedTotal counts accepted contact-form submissions.
// Label:
//   - result: "stored" (new message) or "duplicate" (suppressed by dedup)
var ContactsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_submitted_total",
		Help:      "Total number of contact form submissions, by result.",
	},
	[]string{"result"},
)

// AssetUploadsTotal counts stored binary assets.
// Label:
//   - kind: "avatar", "resume", "blog_cover" or "project_thumbnail"
var AssetUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "asset_uploads_total",
		Help:      "Total number of binary assets stored, by kind.",
	},
	[]string{"kind"},
)
