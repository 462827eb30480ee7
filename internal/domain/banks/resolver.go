package banks

import (
	"strings"

	"konfirmasi_pembayaran/internal/domain/entities"
)

// Resolution of a product to a destination bucket is a pure function of the
// product data. The policy is an ordered rule table: the first matching rule
// wins, so ties always resolve bicycle > electronics > named category >
// default. No rule may consult the clock or the network.

type rule struct {
	label  string
	bucket Bucket
	match  func(s string) bool
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// categoryRules run against each normalized category name, in priority order.
var categoryRules = []rule{
	{
		label:  "Sepeda Listrik",
		bucket: BucketSepedaListrik,
		match: func(s string) bool {
			return s == "sepeda listrik" || containsAny(s, "sepeda listrik", "e-bike", "ebike")
		},
	},
	{
		label:  "Elektronik",
		bucket: BucketElektronik,
		match: func(s string) bool {
			return s == "elektronik" || strings.Contains(s, "elektronik")
		},
	},
	{label: "Handphone", bucket: BucketDefault, match: func(s string) bool { return strings.Contains(s, "handphone") }},
	{label: "Aksesoris", bucket: BucketDefault, match: func(s string) bool { return strings.Contains(s, "aksesoris") }},
	{label: "Laptop", bucket: BucketDefault, match: func(s string) bool { return strings.Contains(s, "laptop") }},
}

// nameRules run against the lower-cased product name when the catalog gave the
// product no categories at all. Same priority ordering as categoryRules, with
// the keyword families the storefront actually uses.
var nameRules = []rule{
	{
		label:  "Sepeda Listrik",
		bucket: BucketSepedaListrik,
		match: func(s string) bool {
			if strings.Contains(s, "sepeda listrik") {
				return true
			}
			if strings.Contains(s, "sepeda") && strings.Contains(s, "listrik") {
				return true
			}
			return containsAny(s, "e-bike", "ebike", "sepeda")
		},
	},
	{
		label:  "Elektronik",
		bucket: BucketElektronik,
		match: func(s string) bool {
			return containsAny(s, "fan", "ac", "tv", "kulkas", "mesin", "elektronik")
		},
	},
	{label: "Handphone", bucket: BucketDefault, match: func(s string) bool { return containsAny(s, "phone", "smartphone", "hp") }},
	{label: "Laptop", bucket: BucketDefault, match: func(s string) bool { return containsAny(s, "laptop", "notebook", "computer") }},
	{label: "Aksesoris", bucket: BucketDefault, match: func(s string) bool {
		return containsAny(s, "case", "charger", "kabel", "aksesoris", "cover")
	}},
}

// Classify maps a product to its category label and destination bucket.
//
// Categories win over the product name: each category rule is tried against
// every category before moving to the next rule, and a catalog that supplied
// categories but matched no rule labels the product with its first category
// (default bucket). Only a product without categories falls through to the
// name scan. A nil product resolves to the default bucket.
func Classify(p *entities.Product) (label string, bucket Bucket) {
	if p == nil {
		return "", BucketDefault
	}

	if len(p.Categories) > 0 {
		for _, r := range categoryRules {
			for _, cat := range p.Categories {
				if r.match(normalize(cat.Name)) {
					return r.label, r.bucket
				}
			}
		}
		return p.Categories[0].Name, BucketDefault
	}

	name := normalize(p.Name)
	for _, r := range nameRules {
		if r.match(name) {
			return r.label, r.bucket
		}
	}
	return "", BucketDefault
}

// Resolve returns the destination account pair for a product.
func Resolve(p *entities.Product) Pair {
	_, bucket := Classify(p)
	return PairFor(bucket)
}

// ResolveBucket returns only the bucket, for callers that persist it.
func ResolveBucket(p *entities.Product) Bucket {
	_, bucket := Classify(p)
	return bucket
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
