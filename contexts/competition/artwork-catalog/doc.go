// Package artworkcatalog implements the artwork catalog inside the
// competition context.
//
// The module owns artwork records (individual creation, field edits, bulk
// import with per-row results) and the admin-curated display order inside each
// category. Gallery order is a curation mechanism only and never reads vote
// data. Visibility follows the shared access policy: admins see every
// category, judges see their assigned categories, everyone else sees nothing.
package artworkcatalog
