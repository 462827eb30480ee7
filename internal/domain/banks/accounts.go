package banks

import "konfirmasi_pembayaran/internal/domain/entities"

// Bucket selects which pair of company accounts a customer transfers into.
type Bucket string

const (
	BucketElektronik    Bucket = "elektronik"
	BucketSepedaListrik Bucket = "sepeda_listrik"
	BucketDefault       Bucket = "default"
)

// Pair is the two destination accounts offered for a bucket, one per bank.
type Pair struct {
	BCA     entities.DestinationBankAccount `json:"bca"`
	Mandiri entities.DestinationBankAccount `json:"mandiri"`
}

// destinationAccounts is the static destination table, keyed by bucket and
// loaded once. Account values come from finance and only change by deploy.
var destinationAccounts = map[Bucket]Pair{
	BucketElektronik: {
		BCA: entities.DestinationBankAccount{
			BankName:      "Bank BCA",
			AccountNumber: "6105558833",
			AccountName:   "PT Membangun Berkat Bersama",
		},
		Mandiri: entities.DestinationBankAccount{
			BankName:      "Bank Mandiri",
			AccountNumber: "420070907091",
			AccountName:   "PT. Membangun Berkat Bersama",
		},
	},
	BucketSepedaListrik: {
		BCA: entities.DestinationBankAccount{
			BankName:      "Bank BCA",
			AccountNumber: "6105863636",
			AccountName:   "PT. TRI Kasih Karunia",
		},
		Mandiri: entities.DestinationBankAccount{
			BankName:      "Bank Mandiri",
			AccountNumber: "1420500068878",
			AccountName:   "PT. TRI Kasih Karunia",
		},
	},
	BucketDefault: {
		BCA: entities.DestinationBankAccount{
			BankName:      "Bank BCA",
			AccountNumber: "6105863636",
			AccountName:   "PT. Topsel Raharja Indonesia",
		},
		Mandiri: entities.DestinationBankAccount{
			BankName:      "Bank Mandiri",
			AccountNumber: "1420099191990",
			AccountName:   "PT. Topsel Raharja Indonesia",
		},
	},
}

// PairFor returns the destination pair for a bucket. Unknown buckets fall
// back to the default pair.
func PairFor(b Bucket) Pair {
	if p, ok := destinationAccounts[b]; ok {
		return p
	}
	return destinationAccounts[BucketDefault]
}
