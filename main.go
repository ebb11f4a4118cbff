// Command isinscraper looks up an Indian listed company by ISIN and prints the
// key ratios and pros/cons from its Screener.in company page.
//
// Usage:
//
//	isinscraper [ISIN]
//	isinscraper list
//	isinscraper serve --port 8000
package main

func main() {
	Execute()
}
