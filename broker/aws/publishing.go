package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/x4b1/relay"
	"github.com/x4b1/relay/broker"
)

var stringDataType = aws.String("String") //nolint: gochecknoglobals // aws constant

// publishing holds the settings shared by SNSPublisher and SQSPublisher.
type publishing struct {
	// metadata key holding the message group of fifo destinations
	metaOrdKey string
	// message group used when the metadata does not provide one
	defaultOrdKey string
	// fifo destinations need a group and a deduplication id
	fifo bool
	// attribute carrying the message id
	msgIDKey string
}

func newPublishing() publishing {
	return publishing{msgIDKey: broker.MessageIDKey}
}

// attributes converts the message metadata plus its id into message attributes
// of the destination type.
func attributes[T any](p publishing, msg relay.Message, value func(dataType, v *string) T) map[string]T {
	att := make(map[string]T, len(msg.Metadata)+1)
	for k, v := range msg.Metadata {
		att[k] = value(stringDataType, aws.String(v))
	}
	att[p.msgIDKey] = value(stringDataType, aws.String(msg.ID))

	return att
}

// deduplicationID returns the message id for fifo destinations.
func (p publishing) deduplicationID(msg relay.Message) *string {
	if !p.fifo {
		return nil
	}

	return aws.String(msg.ID)
}

// groupID returns the message group for fifo destinations, read from the metadata
// or the default one, nil if none applies.
func (p publishing) groupID(msg relay.Message) *string {
	if !p.fifo {
		return nil
	}

	if key, ok := msg.Metadata[p.metaOrdKey]; ok && p.metaOrdKey != "" {
		return aws.String(key)
	}

	if p.defaultOrdKey != "" {
		return aws.String(p.defaultOrdKey)
	}

	return nil
}
