// Package vectratest serves a trimmed copy of the www.vectra.pl markup the
// page objects rely on, for browser tests that must not hit the live site.
package vectratest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
)

// Phone is the customer-service number shown on the fixture contact page.
const Phone = "600500400"

const homeHTML = `<!DOCTYPE html>
<html lang="pl">
<head><meta charset="utf-8"><title>Vectra - Internet, Telewizja, Telefon</title></head>
<body>
	<div id="cookiescript_injected_wrapper" style="position:fixed;bottom:0;left:0;right:0;padding:20px;background:#fff">
		<p>Używamy plików cookies.</p>
		<button type="button" onclick="document.getElementById('cookiescript_injected_wrapper').remove()">Akceptuj wszystkie</button>
	</div>
	<nav>
		<ul>
			<li class="menu-level-one-item"><a href="/internet"><span class="firstMenuItem">Internet</span></a></li>
			<li class="menu-level-one-item"><a href="/telewizja"><span class="firstMenuItem">Telewizja</span></a></li>
			<li class="menu-level-one-item"><a href="/kontakt"><span class="firstMenuItem">Kontakt</span></a></li>
		</ul>
	</nav>
	<main>
		<div class="offer"><h2>Internet 300 Mb/s</h2><div class="mainPrice">45,50 <span>zł/mies.</span></div></div>
		<div class="offer"><h2>Internet 1 Gb/s</h2><div class="mainPrice">99,99&nbsp;zł/mies.</div></div>
		<div class="offer"><h2>Internet + TV</h2><div class="mainPrice">120 zł/mies.</div></div>
	</main>
</body>
</html>`

var contactHTML = fmt.Sprintf(`<!DOCTYPE html>
<html lang="pl">
<head><meta charset="utf-8"><title>Kontakt - Vectra</title></head>
<body>
	<h1>Kontakt z firmą Vectra</h1>
	<section data-widget="(/kontakt) - formy kontaktu - boksy">
		<div id="card-number-1"><h3>Sprzedaż</h3><a class="button" href="tel:+48222333444">+48 222 333 444</a></div>
		<div id="card-number-2"><h3>Obsługa klienta</h3>
			<a class="button btn-outlined" href="tel:+48%s" onclick="event.preventDefault()">600&nbsp;500&nbsp;400</a>
		</div>
	</section>
</body>
</html>`, Phone)

// NewServer starts the fixture site. Close it when done.
func NewServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/kontakt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, contactHTML)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, homeHTML)
	})
	return httptest.NewServer(mux)
}
