package skyblock

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/hypixel/codes"
	"github.com/sotah-inc/skyblock/app/utiltest"
)

type playerAuctionsServer struct {
	ts           *httptest.Server
	requestCount int64
	lastQuery    url.Values
}

func newPlayerAuctionsServer(body string) *playerAuctionsServer {
	out := &playerAuctionsServer{}
	out.ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&out.requestCount, 1)
		out.lastQuery = r.URL.Query()

		fmt.Fprintln(w, body)
	}))

	return out
}

const testPlayerAuctionsBody = `{"success":true,"auctions":[
	{"uuid":"409a1e0f261a49849493278d6cd9305a","auctioneer":"069a79f444e94726a5befca90e38aaf5","item_name":"Aspect of the Dragons","starting_bid":1000000,"bids":[]}
]}`

func TestByName(t *testing.T) {
	mojangTs := utiltest.ServeBody(http.StatusOK, `{"id":"069a79f444e94726a5befca90e38aaf5","name":"Notch"}`)
	defer mojangTs.Close()

	srv := newPlayerAuctionsServer(testPlayerAuctionsBody)
	defer srv.ts.Close()

	res := hypixel.NewResolverForHosts("test-key", srv.ts.URL, mojangTs.URL)
	pa := NewPlayerAuctions(res)

	aucs, err := pa.ByName("Notch")
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, 1, len(aucs))
	assert.Equal(t, "Aspect of the Dragons", aucs[0].ItemName)
	assert.Equal(t, int64(1), atomic.LoadInt64(&srv.requestCount))
	assert.Equal(t, "069a79f444e94726a5befca90e38aaf5", srv.lastQuery.Get("player"))
	assert.Equal(t, "test-key", srv.lastQuery.Get("key"))
}

func TestByNameUnknownName(t *testing.T) {
	mojangTs := utiltest.ServeBody(http.StatusNoContent, "")
	defer mojangTs.Close()

	srv := newPlayerAuctionsServer(testPlayerAuctionsBody)
	defer srv.ts.Close()

	res := hypixel.NewResolverForHosts("test-key", srv.ts.URL, mojangTs.URL)
	pa := NewPlayerAuctions(res)

	_, err := pa.ByName("no-such-player")
	if !assert.NotNil(t, err) {
		return
	}

	assert.Equal(t, codes.NotFound, hypixel.ErrorCode(err))

	// a failed identity lookup never touches the auction endpoint
	assert.Equal(t, int64(0), atomic.LoadInt64(&srv.requestCount))
}

func TestByPlayerBlankAPIKey(t *testing.T) {
	srv := newPlayerAuctionsServer(testPlayerAuctionsBody)
	defer srv.ts.Close()

	res := hypixel.NewResolverForHosts("", srv.ts.URL, hypixel.DefaultMojangHost)
	pa := NewPlayerAuctions(res)

	_, err := pa.ByPlayer("069a79f444e94726a5befca90e38aaf5")
	if !assert.NotNil(t, err) {
		return
	}

	assert.Equal(t, codes.Forbidden, hypixel.ErrorCode(err))
	assert.Equal(t, int64(0), atomic.LoadInt64(&srv.requestCount))
}

func TestByAuctionUUIDAcceptsDashes(t *testing.T) {
	srv := newPlayerAuctionsServer(testPlayerAuctionsBody)
	defer srv.ts.Close()

	res := hypixel.NewResolverForHosts("test-key", srv.ts.URL, hypixel.DefaultMojangHost)
	pa := NewPlayerAuctions(res)

	auc, err := pa.ByAuctionUUID("409a1e0f-261a-4984-9493-278d6cd9305a")
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, "409a1e0f261a49849493278d6cd9305a", auc.UUID)
	assert.Equal(t, "409a1e0f261a49849493278d6cd9305a", srv.lastQuery.Get("uuid"))
}

func TestByAuctionUUIDNotFound(t *testing.T) {
	srv := newPlayerAuctionsServer(`{"success":true,"auctions":[]}`)
	defer srv.ts.Close()

	res := hypixel.NewResolverForHosts("test-key", srv.ts.URL, hypixel.DefaultMojangHost)
	pa := NewPlayerAuctions(res)

	_, err := pa.ByAuctionUUID("409a1e0f261a49849493278d6cd9305a")
	assert.Equal(t, codes.NotFound, hypixel.ErrorCode(err))
}

func TestByPlayerInvalidUUID(t *testing.T) {
	srv := newPlayerAuctionsServer(testPlayerAuctionsBody)
	defer srv.ts.Close()

	res := hypixel.NewResolverForHosts("test-key", srv.ts.URL, hypixel.DefaultMojangHost)
	pa := NewPlayerAuctions(res)

	_, err := pa.ByPlayer("not-a-uuid")
	if !assert.NotNil(t, err) {
		return
	}

	assert.Equal(t, codes.BadRequest, hypixel.ErrorCode(err))
	assert.Equal(t, int64(0), atomic.LoadInt64(&srv.requestCount))
}

func TestByProfile(t *testing.T) {
	srv := newPlayerAuctionsServer(testPlayerAuctionsBody)
	defer srv.ts.Close()

	res := hypixel.NewResolverForHosts("test-key", srv.ts.URL, hypixel.DefaultMojangHost)
	pa := NewPlayerAuctions(res)

	aucs, err := pa.ByProfile("347ef6c1-daac-45ed-9d1f-a02818cf0fb6")
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, 1, len(aucs))
	assert.Equal(t, "347ef6c1daac45ed9d1fa02818cf0fb6", srv.lastQuery.Get("profile"))
}
