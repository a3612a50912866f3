package skyblock

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/hypixel/codes"
	"github.com/sotah-inc/skyblock/app/logging"
	"github.com/sotah-inc/skyblock/app/util"
)

// NewLiveAuctions - generates a view over the paginated active auctions listing
func NewLiveAuctions(res hypixel.Resolver) *LiveAuctions {
	return &LiveAuctions{
		resolver: res,
		pages:    map[int]hypixel.AuctionsPage{},
	}
}

// LiveAuctions memoizes pages of the active auctions listing. Pages are cached
// write-once per index with no eviction; callers wanting a fresh snapshot
// construct a new view. Not safe for concurrent use.
type LiveAuctions struct {
	resolver hypixel.Resolver
	pages    map[int]hypixel.AuctionsPage
}

// GetPage returns the cached page where present, else fetches and caches it
func (la *LiveAuctions) GetPage(page int) (hypixel.AuctionsPage, error) {
	if out, ok := la.pages[page]; ok {
		return out, nil
	}

	out, err := hypixel.NewAuctionsPageFromHTTP(la.resolver, page)
	if err != nil {
		return hypixel.AuctionsPage{}, err
	}

	la.pages[page] = out

	logging.WithFields(logrus.Fields{
		"page":     page,
		"auctions": len(out.Auctions),
	}).Debug("Cached auctions page")

	return out, nil
}

// GetAll returns the concatenation of every page's auctions in page order. A
// second call returns the accumulated list without refetching. The listing is
// volatile and pages are not reconciled across fetches, so an auction that
// shifts pages mid-sweep can appear twice.
func (la *LiveAuctions) GetAll() ([]hypixel.Auction, error) {
	first, err := la.GetPage(0)
	if err != nil {
		return nil, err
	}

	out := []hypixel.Auction{}
	out = append(out, first.Auctions...)
	for page := 1; page < first.TotalPages; page++ {
		p, err := la.GetPage(page)
		if err != nil {
			return nil, err
		}

		out = append(out, p.Auctions...)
	}

	return out, nil
}

type getPageJob struct {
	err  error
	page int
	out  hypixel.AuctionsPage
}

// GetAllParallel behaves like GetAll but fans page fetches out across the
// given number of workers. Page order in the returned list is preserved, and
// no further pages are queued once a fetch fails.
func (la *LiveAuctions) GetAllParallel(workerCount int) ([]hypixel.Auction, error) {
	first, err := la.GetPage(0)
	if err != nil {
		return nil, err
	}

	// snapshotting the uncached page indexes up front, the page map is only
	// ever touched from this goroutine
	remaining := []int{}
	for page := 1; page < first.TotalPages; page++ {
		if _, ok := la.pages[page]; ok {
			continue
		}

		remaining = append(remaining, page)
	}

	// establishing channels
	in := make(chan int)
	out := make(chan getPageJob)
	done := make(chan struct{})

	// spinning up the workers for fetching pages
	worker := func() {
		for page := range in {
			p, err := hypixel.NewAuctionsPageFromHTTP(la.resolver, page)
			out <- getPageJob{err: err, page: page, out: p}
		}
	}
	postWork := func() {
		close(out)
	}
	util.Work(workerCount, worker, postWork)

	// queueing up the remaining pages until done
	go func() {
		defer close(in)

		for _, page := range remaining {
			select {
			case in <- page:
			case <-done:
				return
			}
		}
	}()

	// draining the job results, caching successes and holding the lowest failed page
	failedPage := -1
	var failure error
	for job := range out {
		if job.err != nil {
			logging.WithFields(logrus.Fields{
				"page":  job.page,
				"error": job.err.Error(),
			}).Error("Page fetch failure")

			if failure == nil {
				close(done)
			}
			if failedPage == -1 || job.page < failedPage {
				failedPage = job.page
				failure = job.err
			}

			continue
		}

		la.pages[job.page] = job.out
	}
	if failure != nil {
		return nil, failure
	}

	// concatenating in page order
	total := []hypixel.Auction{}
	for page := 0; page < first.TotalPages; page++ {
		total = append(total, la.pages[page].Auctions...)
	}

	return total, nil
}

// GetByID walks pages in order and returns the first auction matching the
// given internal id or public uuid, without loading pages past the hit
func (la *LiveAuctions) GetByID(id string) (hypixel.Auction, error) {
	first, err := la.GetPage(0)
	if err != nil {
		return hypixel.Auction{}, err
	}

	for page := 0; page < first.TotalPages; page++ {
		p, err := la.GetPage(page)
		if err != nil {
			return hypixel.Auction{}, err
		}

		for _, auc := range p.Auctions {
			if auc.UUID == id || auc.ID == id {
				return auc, nil
			}
		}
	}

	return hypixel.Auction{}, hypixel.Error{
		Code:  codes.NotFound,
		Cause: fmt.Sprintf("no auction exists with id %s", id),
	}
}
