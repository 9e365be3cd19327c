package analytics

// Topic used for search analytics across every sink.
const TopicSearchEvents = "moai_search_events"

// SearchEvent is the analytics record emitted after every search call.
type SearchEvent struct {
	Timestamp      int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	Query          string `json:"query,omitempty" parquet:"name=query,type=BYTE_ARRAY,convertedtype=UTF8"`
	Category       string `json:"category,omitempty" parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	SortBy         string `json:"sortBy" parquet:"name=sortBy,type=BYTE_ARRAY,convertedtype=UTF8"`
	ResultCount    int    `json:"resultCount" parquet:"name=resultCount,type=INT32"`
	SearchTimeMs   int64  `json:"searchTimeMs" parquet:"name=searchTimeMs,type=INT64"`
	HasPriceFilter bool   `json:"hasPriceFilter" parquet:"name=hasPriceFilter,type=BOOLEAN"`
	HasGeoFilter   bool   `json:"hasGeoFilter" parquet:"name=hasGeoFilter,type=BOOLEAN"`
}
