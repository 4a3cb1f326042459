// Package assets provides the domain.AssetReader implementations used to
// read records.
//
// Readers:
//   - FileReader reads straight from the filesystem.
//   - FSReader reads from an fs.FS, such as an embed.FS of bundled assets.
//   - FetchReader performs a blocking HTTP GET, for platforms where bundled
//     assets live in a container that is not a plain directory.
//
// Every reader reports a missing record with an error matching
// fs.ErrNotExist, so callers can treat it as "no data yet".
package assets
