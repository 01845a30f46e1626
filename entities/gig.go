package entities

type Gig struct {
	GigID           string `json:"gig_id" redis:"gig_id"`
	Band            string `json:"band" redis:"band"`
	City            string `json:"city" redis:"city"`
	Date            string `json:"date" redis:"date"`
	CollectionPoint string `json:"collection_point" redis:"collection_point"`
	CollectionTime  string `json:"collection_time" redis:"collection_time"`
}
