package dto

type CreateTestimonialRequest struct {
	CustomerName  string `json:"customerName"`
	ReviewMessage string `json:"reviewMessage"`
	Rating        int    `json:"rating"`
}
