// Package cloudwriter abstracts object-storage uploads for the analytics
// parquet sink. Writers buffer locally and upload the object on Close.
package cloudwriter

type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
