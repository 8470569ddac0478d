// Package pagination provides lazy, forward-only iteration over paginated
// Blitzr endpoints.
//
// The API paginates with start/limit query parameters and signals the end of
// a dataset with a short page: any page holding fewer records than the
// requested limit is the last one, even when it is non-empty. A page of
// exactly limit records always triggers one more fetch, which may come back
// empty.
//
// Example usage:
//
//	pager := pagination.New(blitzrClient, "artist/releases/", params)
//	for release, err := range pager.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(release["name"])
//	}
//
// Each pager owns its cursor exclusively: one page in memory, one in-page
// position, one running offset. Sequences are single-pass; re-iterating from
// the start means constructing a new pager. Search endpoints additionally
// report a total result count, see SearchPager.
package pagination
