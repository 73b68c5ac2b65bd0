package metrics

const Namespace = "superlists"
